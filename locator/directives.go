package locator

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/rs/zerolog"
)

// directivePattern is the default inline directive syntax:
//
//	/* DBWARDEN:Key=Value */
//
// Custom patterns must keep the named "key" and "value" capture groups.
var directivePattern = regexp.MustCompile(`(?i)/\*\s*DBWARDEN:(?P<key>\w+)\s*=\s*(?P<value>[^\s*]+)\s*\*/`)

// applyDirectives scans a command's script text for inline directives and
// applies the recognised ones. Unknown keys are skipped silently; values
// that fail to parse are logged and ignored.
func applyDirectives(cmd *batch.Command, pattern *regexp.Regexp, log zerolog.Logger) {
	keyIdx := pattern.SubexpIndex("key")
	valueIdx := pattern.SubexpIndex("value")
	if keyIdx < 0 || valueIdx < 0 {
		log.Warn().Str("pattern", pattern.String()).
			Msg("directive pattern lacks key/value capture groups, directives skipped")
		return
	}

	for _, match := range pattern.FindAllStringSubmatch(cmd.Script(), -1) {
		key := match[keyIdx]
		value := match[valueIdx]

		switch strings.ToLower(key) {
		case "transactionrequirement":
			req, err := models.ParseTransactionRequirement(value)
			if err != nil {
				log.Warn().Str("key", key).Str("value", value).Msg("ignoring malformed directive")
				continue
			}
			cmd.WithTransactionRequirement(req)

		case "isolationlevel":
			level, err := models.ParseIsolationLevel(value)
			if err != nil {
				log.Warn().Str("key", key).Str("value", value).Msg("ignoring malformed directive")
				continue
			}
			cmd.WithIsolation(level)

		case "executiontype":
			execType, err := models.ParseExecutionType(value)
			if err != nil {
				log.Warn().Str("key", key).Str("value", value).Msg("ignoring malformed directive")
				continue
			}
			cmd.WithExecutionType(execType)

		default:
			log.Debug().Str("key", key).Msg("ignoring unknown directive key")
		}
	}
}

// batchFromScript builds a batch from raw script text: the text is split on
// separator, every segment becomes a script command with its directives
// applied, and the finished batch is checked for requirement conflicts.
func batchFromScript(text, separator string, o options) (*batch.Batch, error) {
	b := o.factory()
	for _, segment := range SeparateScriptCommands(text, separator) {
		cmd := b.AddScript(segment, models.TxDontCare)
		applyDirectives(cmd, o.pattern, o.log)
	}
	if err := checkBatchConflicts(b); err != nil {
		return nil, err
	}
	return b, nil
}

// checkBatchConflicts surfaces conflicts between directives established on
// different commands of the same batch.
func checkBatchConflicts(b *batch.Batch) error {
	if _, err := b.RequiresTransaction(); err != nil {
		return err
	}
	if _, _, err := b.IsolationLevel(); err != nil {
		return err
	}
	return nil
}
