// Package auth has helpers for setting up TLS and basic auth on HTTP clients
// that checks use to reach the services they monitor.
package auth

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"net/http"
	"runtime"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TransportWithBasicAuth adds basic auth credentials to every request that
// goes through it.
type TransportWithBasicAuth struct {
	http.RoundTripper
	Username string
	Password string
}

// RoundTrip implements http.RoundTripper
func (t *TransportWithBasicAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.SetBasicAuth(t.Username, t.Password)
	return t.RoundTripper.RoundTrip(cloned)
}

// AugmentCertPoolFromCAFile adds the PEM certs in caCertPath to basePool.
func AugmentCertPoolFromCAFile(basePool *x509.CertPool, caCertPath string) error {
	bytes, err := ioutil.ReadFile(caCertPath)
	if err != nil {
		return errors.Wrapf(err, "CA cert path %s could not be read", caCertPath)
	}

	if !basePool.AppendCertsFromPEM(bytes) {
		return errors.Errorf("CA cert file %s is not the right format", caCertPath)
	}

	return nil
}

// TLSConfig fills in the given tls.Config with the system cert pool plus any
// configured CA and client certs.
func TLSConfig(tlsConfig *tls.Config, caCertPath string, clientCertPath string, clientKeyPath string) (*tls.Config, error) {
	certs, err := CertPool()
	if err != nil {
		return nil, err
	}

	if caCertPath != "" && certs != nil {
		if err := AugmentCertPoolFromCAFile(certs, caCertPath); err != nil {
			return nil, err
		}
	}

	var clientCerts []tls.Certificate

	if clientCertPath != "" && clientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(clientCertPath, clientKeyPath)
		if err != nil {
			return nil, errors.WithMessage(err,
				fmt.Sprintf("Client cert/key could not be loaded from %s/%s",
					clientKeyPath, clientCertPath))
		}
		clientCerts = append(clientCerts, cert)
		log.Infof("Configured TLS client cert in %s with key %s", clientCertPath, clientKeyPath)
	}

	tlsConfig.Certificates = clientCerts
	tlsConfig.RootCAs = certs

	return tlsConfig, nil
}

// CertPool returns the system cert pool on platforms that expose it.
func CertPool() (*x509.CertPool, error) {
	var certs *x509.CertPool
	if runtime.GOOS != "windows" {
		var err error
		certs, err = x509.SystemCertPool()
		if err != nil {
			return nil, errors.WithMessage(err, "Could not load system x509 cert pool")
		}
	}

	return certs, nil
}
