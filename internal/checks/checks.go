// Package checks is the core logic for checks.  Checks are what collect
// metrics from a monitored service.  They have a simple interface that all
// must implement: the Configure method, which takes one argument of the same
// type that you pass as the configTemplate to the Register function, and the
// Run method, which does one round of collection.  Optionally, checks may
// implement the niladic Shutdown method to do cleanup.
package checks

import (
	"context"

	"github.com/hostagent/checks/internal/checks/base"
	"github.com/hostagent/checks/internal/core/config"
	"github.com/hostagent/checks/internal/utils"
	log "github.com/sirupsen/logrus"
)

// CheckFactory is a niladic function that creates an unconfigured instance of
// a check.
type CheckFactory func() interface{}

// CheckFactories holds all of the registered check factories
var CheckFactories = map[string]CheckFactory{}

// These are blank (zero-value) instances of the configuration struct for a
// particular check type.
var configTemplates = map[string]config.CheckCustomConfig{}

// Check is the collection interface every check implements in addition to its
// typed Configure method.
type Check interface {
	Run(ctx context.Context) error
}

// Shutdownable should be implemented by all checks that need to clean up
// resources before being destroyed.
type Shutdownable interface {
	Shutdown()
}

// hasCheckBase is how the manager reaches the embedded base of a check
// through the generic interface so it can inject the aggregator sender.
type hasCheckBase interface {
	Core() *base.CheckBase
}

// Register a new check type with the runner.  This is intended to be called
// from the init function of the module of a specific check implementation.
// configTemplate should be a zero-valued struct that is of the same type as
// the parameter to the Configure method for this check type.
func Register(checkType string, factory CheckFactory, configTemplate config.CheckCustomConfig) {
	if _, ok := CheckFactories[checkType]; ok {
		panic("Check type '" + checkType + "' already registered")
	}
	CheckFactories[checkType] = factory
	configTemplates[checkType] = configTemplate
}

// DeregisterAll unregisters all check types.  Primarily intended for testing
// purposes.
func DeregisterAll() {
	for k := range CheckFactories {
		delete(CheckFactories, k)
	}

	for k := range configTemplates {
		delete(configTemplates, k)
	}
}

func newCheck(checkType string) interface{} {
	if factory, ok := CheckFactories[checkType]; ok {
		return factory()
	}

	log.WithFields(log.Fields{
		"checkType": checkType,
	}).Error("Check type not supported")
	return nil
}

// getCustomConfigForCheck takes a generic CheckConfig and pulls out
// check-specific config to populate a clone of the config template that was
// registered for the check type specified in conf.  This will also validate
// the config and return false if validation fails.
func getCustomConfigForCheck(conf *config.CheckConfig) (config.CheckCustomConfig, bool) {
	confTemplate, ok := configTemplates[conf.Type]
	if !ok {
		log.WithFields(log.Fields{
			"checkType": conf.Type,
		}).Error("Unknown check type")
		return nil, false
	}
	checkConfig := utils.CloneInterface(confTemplate).(config.CheckCustomConfig)

	if ok := config.FillInConfigTemplate("CheckConfig", checkConfig, conf); !ok {
		return nil, false
	}

	if err := validateConfig(checkConfig); err != nil {
		checkConfig.CoreConfig().ValidationError = err.Error()
		return checkConfig, false
	}

	return checkConfig, true
}
