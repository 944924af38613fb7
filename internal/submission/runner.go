// internal/submission/runner.go
package submission

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"application-submitter/internal/common/config"
	"application-submitter/internal/common/errors"
	"application-submitter/internal/common/logger"
	"application-submitter/internal/common/metrics"
	"application-submitter/internal/common/observability"

	"github.com/google/uuid"
)

// State identifies a stage of the submission pipeline.
type State string

const (
	StateValidating State = "validating"
	StateBuilding   State = "building"
	StateSigning    State = "signing"
	StateSending    State = "sending"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Runner drives the pipeline Validating -> Building -> Signing -> Sending ->
// {Succeeded | Failed}. Any error after Validating moves directly to Failed;
// there is no retry edge and no path back to an earlier state.
type Runner struct {
	cfg    *config.Config
	client *Client
	logger logger.Logger
	obs    *observability.Observability

	// Injected for tests.
	now    func() time.Time
	stdout io.Writer
	stderr io.Writer
}

func NewRunner(cfg *config.Config, client *Client, log logger.Logger, obs *observability.Observability) *Runner {
	return &Runner{
		cfg:    cfg,
		client: client,
		logger: log,
		obs:    obs,
		now:    time.Now,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes one submission attempt and returns the process exit code:
// 0 only on a confirmed receipt, 1 on every failure branch. The receipt goes
// to stdout; every diagnostic goes to stderr.
func (r *Runner) Run(ctx context.Context) int {
	log := r.logger.WithFields(map[string]interface{}{
		"attemptId": uuid.NewString(),
	})
	start := r.now()

	outcome := r.execute(ctx, log)

	status := string(StateSucceeded)
	if outcome.Succeeded() {
		fmt.Fprintf(r.stdout, "Submission receipt: %v\n", outcome.Receipt)
		metrics.SubmissionsCompleted.Inc()
		log.Info("submission confirmed", map[string]interface{}{
			"receipt": fmt.Sprintf("%v", outcome.Receipt),
		})
	} else {
		status = string(StateFailed)
		fmt.Fprintln(r.stderr, outcome.Err.Diagnostic)
		metrics.SubmissionsFailed.WithLabelValues(string(outcome.Err.Code)).Inc()
		log.WithError(outcome.Err).Error("submission failed", map[string]interface{}{
			"errorCode": string(outcome.Err.Code),
			"category":  errors.GetErrorCategory(outcome.Err.Code),
		})
	}

	elapsed := r.now().Sub(start)
	metrics.SubmissionDuration.Observe(elapsed.Seconds())
	if r.obs != nil {
		r.obs.RecordSubmission(ctx, status)
		r.obs.RecordSubmissionDuration(ctx, elapsed, status)
	}

	if !outcome.Succeeded() {
		return 1
	}
	return 0
}

func (r *Runner) execute(ctx context.Context, log logger.Logger) Outcome {
	r.transition(log, StateValidating)
	if missing := r.missingInputs(); len(missing) > 0 {
		return Outcome{Err: errors.NewConfigurationMissingError(missing)}
	}

	r.transition(log, StateBuilding)
	rec := NewRecord(r.cfg.Secrets.RunURL, r.now())

	r.transition(log, StateSigning)
	signed, err := NewSignedRequest(r.cfg.Secrets.SigningSecret, rec)
	if err != nil {
		return Outcome{Err: errors.NewTransportFailedError(fmt.Errorf("encode payload: %w", err))}
	}

	r.transition(log, StateSending)
	resp, serr := r.client.Submit(ctx, signed)
	if serr != nil {
		return Outcome{Err: serr}
	}

	result, ierr := Interpret(resp.Body)
	if ierr != nil {
		return Outcome{Err: ierr}
	}

	return Outcome{Receipt: result.Receipt}
}

// missingInputs reports every absent required input by its environment
// variable name. An empty value counts as absent: an empty signing secret
// cannot produce a verifiable signature.
func (r *Runner) missingInputs() []string {
	var missing []string
	if r.cfg.Secrets.SigningSecret == "" {
		missing = append(missing, config.EnvSigningSecret)
	}
	if r.cfg.Secrets.RunURL == "" {
		missing = append(missing, config.EnvRunURL)
	}
	return missing
}

func (r *Runner) transition(log logger.Logger, state State) {
	log.Debug("state transition", map[string]interface{}{
		"state": string(state),
	})
}
