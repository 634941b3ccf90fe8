// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manager

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExecuteBatch runs every command of the batch in order against one
// connection, or one transaction when any command requires it.
//
// The batch is reset first, so earlier execution state never leaks into the
// run. Conflicting transaction or isolation requirements abort before
// anything is executed. The first command failing aborts the remainder:
// later commands keep wasExecuted == false and their results stay empty.
// A manager-acquired transaction is committed on success and rolled back on
// failure; side effects of commands that ran outside a transaction are left
// as-is, remediation is the caller's concern.
//
// With redetectAfter, state and version are re-detected after a successful
// run.
//
// The manager must be in a ready state or New; allowing New is what lets
// upgrade batches create the database in the first place.
func (m *Manager) ExecuteBatch(ctx context.Context, b *batch.Batch, readOnly, redetectAfter bool) error {
	if err := m.requireReadyOrNew("execute batch"); err != nil {
		return err
	}
	if readOnly && !m.provider.SupportsReadOnly() {
		return fmt.Errorf("read-only batch execution: %w", ErrNotSupported)
	}

	b.Reset()

	required, err := b.RequiresTransaction()
	if err != nil {
		m.log.Error().Err(err).Msg("batch rejected before execution")
		return err
	}
	isolation, _, err := b.IsolationLevel()
	if err != nil {
		m.log.Error().Err(err).Msg("batch rejected before execution")
		return err
	}

	runID := uuid.NewString()
	log := m.log.With().Str("run_id", runID).Logger()
	log.Debug().
		Int("commands", b.Len()).
		Bool("transactional", required).
		Msg("executing batch")

	var execErr error
	if required {
		tx, txErr := m.provider.Transaction(ctx, readOnly, isolation)
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to begin batch transaction")
			return fmt.Errorf("beginning batch transaction: %w", txErr)
		}

		execErr = m.runCommands(ctx, b, tx, log)
		if execErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("rollback after failed batch")
			}
			return execErr
		}
		if err := tx.Commit(); err != nil {
			log.Error().Err(err).Msg("commit of batch transaction failed")
			return fmt.Errorf("committing batch transaction: %w", err)
		}
	} else {
		conn, connErr := m.provider.Connection(ctx, readOnly)
		if connErr != nil {
			log.Error().Err(connErr).Msg("failed to open batch connection")
			return fmt.Errorf("opening batch connection: %w", connErr)
		}

		execErr = m.runCommands(ctx, b, conn, log)
		if closeErr := conn.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("closing batch connection")
		}
		if execErr != nil {
			return execErr
		}
	}

	if redetectAfter {
		m.redetect(ctx)
	}
	return nil
}

func (m *Manager) runCommands(ctx context.Context, b *batch.Batch, q batch.Querier, log zerolog.Logger) error {
	for i, cmd := range b.Commands() {
		if err := cmd.Validate(); err != nil {
			log.Error().Err(err).Int("command", i).Msg("invalid command, aborting batch")
			return fmt.Errorf("command %d: %w", i, err)
		}

		result, err := m.executeCommand(ctx, q, cmd)
		if err != nil {
			if batch.IsSoft(err) {
				cmd.MarkSoftFailure(err.Error())
				log.Warn().Err(err).Int("command", i).Msg("command recorded soft failure")
				continue
			}
			cmd.MarkFailure(err)
			log.Error().Err(err).Int("command", i).Msg("command failed, aborting batch")
			return fmt.Errorf("command %d: %w", i, err)
		}
		cmd.MarkExecuted(result)
	}
	return nil
}

func (m *Manager) executeCommand(ctx context.Context, q batch.Querier, cmd *batch.Command) (any, error) {
	if !cmd.IsScript() {
		return cmd.Code()(ctx, q)
	}

	script := cmd.Script()
	args := cmd.Args()

	switch cmd.ExecutionType() {
	case models.ExecReader:
		rows, err := q.QueryContext(ctx, script, args...)
		if err != nil {
			return nil, err
		}
		return readAllRows(rows)

	case models.ExecScalar:
		var value any
		if err := q.QueryRowContext(ctx, script, args...).Scan(&value); err != nil {
			return nil, err
		}
		return value, nil

	default: // models.ExecNonQuery
		res, err := q.ExecContext(ctx, script, args...)
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			// drivers without affected-row support still count as success
			return int64(0), nil
		}
		return affected, nil
	}
}
