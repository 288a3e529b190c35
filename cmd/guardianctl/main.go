// Command guardianctl inspects and maintains the stored guardian state offline.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"guardian/config"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/persistence/kv"
	persistence "guardian/internal/infra/persistence/repository"
	"guardian/internal/infra/qrcode"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// state is the slice of the application that the commands operate on.
type state struct {
	Alerts   repository.AlertLogRepository
	Contacts repository.ContactRepository
	Profile  repository.ProfileRepository
	QRCode   service.QRCodeService
	Now      func() time.Time
}

// loader opens the state and returns a func releasing it.
type loader func(ctx context.Context) (*state, func(), error)

func main() {
	if err := newRootCmd(openState).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(load loader) *cobra.Command {
	root := &cobra.Command{
		Use:           "guardianctl",
		Short:         "Guardian state maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAlertsCmd(load))
	root.AddCommand(newContactsCmd(load))
	root.AddCommand(newProfileCmd(load))

	return root
}

// openState starts just the storage half of the service graph.
func openState(ctx context.Context) (*state, func(), error) {
	var st state

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			kv.New,
			persistence.NewAlertLogRepository,
			persistence.NewContactRepository,
			persistence.NewProfileRepository,
			qrcode.New,
		),
		fx.Populate(&st.Alerts, &st.Contacts, &st.Profile, &st.QRCode),
	)
	if err := app.Start(ctx); err != nil {
		return nil, nil, err
	}
	st.Now = time.Now

	stop := func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = app.Stop(stopCtx)
	}

	return &st, stop, nil
}

// withState opens the state for the duration of run.
func withState(load loader, run func(cmd *cobra.Command, args []string, st *state) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st, release, err := load(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		return run(cmd, args, st)
	}
}
