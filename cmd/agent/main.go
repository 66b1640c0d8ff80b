package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/hostagent/checks/internal/core"

	// Register all bundled check types
	_ "github.com/hostagent/checks/internal/checks/apache"

	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Version of the runner, set at build time
var Version string

const defaultConfigPath = "/etc/hostagent/checks.yaml"

func init() {
	log.SetFormatter(&prefixed.TextFormatter{})
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stdout)
}

// flags is used to store parsed flag values
type flags struct {
	// version is a bool flag for printing the runner version string
	version bool
	// configPath is a string flag for specifying the config file
	configPath string
	// debug is a bool flag for printing debug level information
	debug bool
}

func getFlags() *flags {
	flags := &flags{}
	set := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	set.BoolVar(&flags.version, "version", false, "print runner version")
	set.StringVar(&flags.configPath, "config", defaultConfigPath, "runner config path")
	set.BoolVar(&flags.debug, "debug", false, "print debugging output")

	// The set is configured to exit on errors so we don't need to check the
	// return value here.
	_ = set.Parse(os.Args[1:])

	return flags
}

func main() {
	flags := getFlags()

	if flags.version {
		fmt.Printf("agent-checks %s\n", Version)
		os.Exit(0)
	}

	_, shutdown, err := core.Startup(flags.configPath)
	if err != nil {
		log.WithError(err).Error("Could not start up")
		os.Exit(1)
	}

	// The -debug flag wins over whatever log level the config set
	if flags.debug {
		log.SetLevel(log.DebugLevel)
	}

	interruptCh := make(chan os.Signal, 1)
	signal.Notify(interruptCh, os.Interrupt, syscall.SIGTERM)
	sig := <-interruptCh

	log.Infof("Caught %s, shutting down", sig)
	shutdown()
}
