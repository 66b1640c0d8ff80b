package checks

import (
	"errors"
	"fmt"

	"github.com/hostagent/checks/internal/core/config"
	"github.com/hostagent/checks/internal/core/config/validation"
)

// Used to validate configuration that is common to all checks up front.
func validateConfig(checkConfig config.CheckCustomConfig) error {
	conf := checkConfig.CoreConfig()

	if _, ok := CheckFactories[conf.Type]; !ok {
		return errors.New("check type not recognized")
	}

	if conf.IntervalSeconds <= 0 {
		return fmt.Errorf("invalid intervalSeconds provided: %d", conf.IntervalSeconds)
	}

	if err := validation.ValidateStruct(checkConfig); err != nil {
		return err
	}

	return validation.ValidateCustomConfig(checkConfig)
}
