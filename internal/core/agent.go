// Package core contains the central frame of the runner that hooks up the
// various subsystems.
package core

import (
	"github.com/hostagent/checks/internal/aggregator"
	"github.com/hostagent/checks/internal/checks"
	"github.com/hostagent/checks/internal/core/config"
	"github.com/hostagent/checks/internal/core/writer"
	log "github.com/sirupsen/logrus"
)

// Agent is what hooks up the check manager, the sender, and the diagnostics
// endpoint.
type Agent struct {
	manager *checks.CheckManager
	config  *config.Config

	diagnosticsStop func()
}

// Startup loads the config at the given path and starts all configured
// checks.  The returned shutdown function stops everything cleanly.
func Startup(configPath string) (*Agent, func(), error) {
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	return StartupWithConfig(conf, writer.New())
}

// StartupWithConfig starts the agent with an already-loaded config and a
// specific sender, which is how a host process embeds the runner with its own
// aggregator binding.
func StartupWithConfig(conf *config.Config, sender aggregator.Sender) (*Agent, func(), error) {
	log.SetLevel(conf.LogrusLevel())
	log.Infof("Using log level %s", log.GetLevel().String())

	agent := &Agent{
		manager: checks.NewCheckManager(sender),
		config:  conf,
	}

	agent.manager.Configure(conf.Checks)

	if conf.DiagnosticsAddress != "" {
		stop, err := agent.serveDiagnostics(conf.DiagnosticsAddress)
		if err != nil {
			agent.manager.Shutdown()
			return nil, nil, err
		}
		agent.diagnosticsStop = stop
	}

	return agent, agent.shutdown, nil
}

// Statuses exposes the state of all running checks.
func (a *Agent) Statuses() []checks.CheckStatus {
	return a.manager.Statuses()
}

func (a *Agent) shutdown() {
	if a.diagnosticsStop != nil {
		a.diagnosticsStop()
	}
	a.manager.Shutdown()
	log.Info("Shut down all checks")
}
