package validation

import (
	"github.com/robfig/cron/v3"

	"github.com/weftlabs/weft/pkg/models"
)

const defaultCronExpression = "0 * * * *"

var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

func parseCron(expr string) error {
	_, err := cronParser.Parse(expr)

	return err
}

// settingsWhitelist is the full set of keys the engine accepts. Anything else
// is stripped proactively: the engine rejects unknown keys with an opaque
// error, so dropping here is self-defense, not lossiness.
var settingsWhitelist = map[string]struct{}{
	"executionOrder":           {},
	"saveDataErrorExecution":   {},
	"saveDataSuccessExecution": {},
	"callerIds":                {},
	"executionTimeout":         {},
	"errorWorkflow":            {},
	"timezone":                 {},
}

// normalizeSettings copies only recognized keys into a fresh settings object.
// executionOrder is always present and valid in the output.
func normalizeSettings(raw any, repairs *[]Repair) *models.Settings {
	settings := &models.Settings{ExecutionOrder: models.ExecutionOrderV1}

	rawMap, ok := asMap(raw)
	if !ok {
		if raw != nil {
			*repairs = append(*repairs, Repair{Location: "workflow", Field: "settings", From: raw})
		}

		return settings
	}

	for key := range rawMap {
		if _, recognized := settingsWhitelist[key]; !recognized {
			*repairs = append(*repairs, Repair{Location: "workflow.settings", Field: key, From: rawMap[key]})
		}
	}

	if order, ok := asString(rawMap["executionOrder"]); ok {
		switch models.ExecutionOrder(order) {
		case models.ExecutionOrderLegacy, models.ExecutionOrderV1:
			settings.ExecutionOrder = models.ExecutionOrder(order)
		default:
			*repairs = append(*repairs, Repair{
				Location: "workflow.settings", Field: "executionOrder",
				From: order, To: string(models.ExecutionOrderV1),
			})
		}
	}

	settings.SaveDataErrorExecution = normalizeSavePolicy(rawMap, "saveDataErrorExecution", repairs)
	settings.SaveDataSuccessExecution = normalizeSavePolicy(rawMap, "saveDataSuccessExecution", repairs)

	if callerIDs, ok := asStringSlice(rawMap["callerIds"]); ok && len(callerIDs) > 0 {
		settings.CallerIDs = callerIDs
	}

	if timeout, ok := asNumber(rawMap["executionTimeout"]); ok {
		if timeout > 0 {
			settings.ExecutionTimeout = timeout
		} else {
			*repairs = append(*repairs, Repair{
				Location: "workflow.settings", Field: "executionTimeout", From: timeout,
			})
		}
	}

	if errorWorkflow, ok := asString(rawMap["errorWorkflow"]); ok {
		settings.ErrorWorkflow = errorWorkflow
	}

	if timezone, ok := asString(rawMap["timezone"]); ok {
		settings.Timezone = timezone
	}

	return settings
}

func normalizeSavePolicy(rawMap map[string]any, key string, repairs *[]Repair) models.SavePolicy {
	raw, present := rawMap[key]
	if !present {
		return ""
	}

	policy, ok := asString(raw)
	if ok {
		switch models.SavePolicy(policy) {
		case models.SavePolicyAll, models.SavePolicyNone:
			return models.SavePolicy(policy)
		}
	}

	*repairs = append(*repairs, Repair{Location: "workflow.settings", Field: key, From: raw})

	return ""
}
