package checks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostagent/checks/internal/aggregator"
	"github.com/hostagent/checks/internal/core/config"
	"github.com/hostagent/checks/internal/utils"
	log "github.com/sirupsen/logrus"
)

// ActiveCheck is a configured, running check instance.
type ActiveCheck struct {
	instance interface{}
	config   config.CheckCustomConfig
	checkID  string
	cancel   func()

	lock       sync.Mutex
	lastResult string
	lastRunAt  time.Time
}

// LastResult returns the serialized failure payload of the most recent
// invocation, or an empty string if it succeeded.
func (ac *ActiveCheck) LastResult() (string, time.Time) {
	ac.lock.Lock()
	defer ac.lock.Unlock()
	return ac.lastResult, ac.lastRunAt
}

func (ac *ActiveCheck) recordResult(result string) {
	ac.lock.Lock()
	ac.lastResult = result
	ac.lastRunAt = time.Now()
	ac.lock.Unlock()
}

// CheckManager coordinates the startup and shutdown of checks based on the
// configuration provided by the user.  Every configured check runs on its own
// interval until the manager is shut down.
type CheckManager struct {
	sender aggregator.Sender

	lock         sync.Mutex
	activeChecks []*ActiveCheck
	ctx          context.Context
	cancel       func()
}

// NewCheckManager creates a manager that submits through the given sender.
func NewCheckManager(sender aggregator.Sender) *CheckManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &CheckManager{
		sender: sender,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Configure receives the list of check configurations and starts a check
// instance for each valid one.  Invalid configs are skipped with an error
// log; they don't prevent other checks from starting.
func (cm *CheckManager) Configure(confs []config.CheckConfig) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	for i := range confs {
		conf := &confs[i]

		checkConfig, ok := getCustomConfigForCheck(conf)
		if !ok {
			if checkConfig != nil {
				log.WithFields(log.Fields{
					"checkType": conf.Type,
					"error":     checkConfig.CoreConfig().ValidationError,
				}).Error("Check config is invalid, not running check")
			}
			continue
		}

		checkID := fmt.Sprintf("%s:%d", conf.Type, i)
		if am := cm.startCheck(checkID, checkConfig); am != nil {
			cm.activeChecks = append(cm.activeChecks, am)
		}
	}

	activeChecksGauge.Set(float64(len(cm.activeChecks)))
}

func (cm *CheckManager) startCheck(checkID string, checkConfig config.CheckCustomConfig) *ActiveCheck {
	coreConfig := checkConfig.CoreConfig()

	instance := newCheck(coreConfig.Type)
	if instance == nil {
		return nil
	}

	baseHolder, ok := instance.(hasCheckBase)
	if !ok {
		log.WithFields(log.Fields{
			"checkType": coreConfig.Type,
		}).Error("Check does not embed the check base")
		return nil
	}
	baseHolder.Core().InitCheck(coreConfig.Type, checkID, coreConfig.Hostname, cm.sender, coreConfig.ExtraTags)

	if !config.CallConfigure(instance, checkConfig) {
		return nil
	}

	check, ok := instance.(Check)
	if !ok {
		log.WithFields(log.Fields{
			"checkType": coreConfig.Type,
		}).Error("Check has no Run method")
		return nil
	}

	ctx, cancel := context.WithCancel(cm.ctx)
	ac := &ActiveCheck{
		instance: instance,
		config:   checkConfig,
		checkID:  checkID,
		cancel:   cancel,
	}

	interval := time.Duration(coreConfig.IntervalSeconds) * time.Second
	utils.RunOnInterval(ctx, func() {
		checkRunsCounter.WithLabelValues(coreConfig.Type).Inc()
		result := RunCheck(ctx, check)
		if result != "" {
			checkFailuresCounter.WithLabelValues(coreConfig.Type).Inc()
			log.WithFields(log.Fields{
				"checkID": checkID,
				"result":  result,
			}).Error("Check run failed")
		}
		ac.recordResult(result)
	}, interval)

	log.WithFields(log.Fields{
		"checkID":         checkID,
		"intervalSeconds": coreConfig.IntervalSeconds,
	}).Info("Started check")

	return ac
}

// Shutdown stops all running checks and cleans up any that need it.
func (cm *CheckManager) Shutdown() {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	cm.cancel()
	for _, ac := range cm.activeChecks {
		ac.cancel()
		if sd, ok := ac.instance.(Shutdownable); ok {
			sd.Shutdown()
		}
	}
	cm.activeChecks = nil
	activeChecksGauge.Set(0)
}

// CheckStatus is a point-in-time snapshot of one active check, for the
// diagnostics endpoint.
type CheckStatus struct {
	CheckID         string    `json:"checkId"`
	Type            string    `json:"type"`
	IntervalSeconds int       `json:"intervalSeconds"`
	LastResult      string    `json:"lastResult,omitempty"`
	LastRunAt       time.Time `json:"lastRunAt"`
	Warnings        []string  `json:"warnings,omitempty"`
}

// Statuses returns the current state of all active checks.
func (cm *CheckManager) Statuses() []CheckStatus {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	out := make([]CheckStatus, 0, len(cm.activeChecks))
	for _, ac := range cm.activeChecks {
		lastResult, lastRunAt := ac.LastResult()
		status := CheckStatus{
			CheckID:         ac.checkID,
			Type:            ac.config.CoreConfig().Type,
			IntervalSeconds: ac.config.CoreConfig().IntervalSeconds,
			LastResult:      lastResult,
			LastRunAt:       lastRunAt,
		}
		if baseHolder, ok := ac.instance.(hasCheckBase); ok {
			status.Warnings = baseHolder.Core().GetWarnings()
		}
		out = append(out, status)
	}
	return out
}
