package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"guardian/internal/domain/entity"
	"guardian/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAlertsCmd(load loader) *cobra.Command {
	alerts := &cobra.Command{Use: "alerts", Short: "Alert log commands"}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List logged alerts, newest first",
		RunE: withState(load, func(cmd *cobra.Command, _ []string, st *state) error {
			entries, err := st.Alerts.LoadAlertLog(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to load alert log")
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no alerts")

				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			now := st.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tTYPE\tWHEN\tLOCATION\tSTATUS")
			for _, entry := range entries {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					entry.ID,
					entry.Type,
					util.FormatAgo(entry.Timestamp, now),
					formatFix(entry.Location),
					entry.Status,
				)
			}

			return w.Flush()
		}),
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "show at most this many alerts (0 for all)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the alert log",
		RunE: withState(load, func(cmd *cobra.Command, _ []string, st *state) error {
			if err := st.Alerts.SaveAlertLog(cmd.Context(), []*entity.AlertLogEntry{}); err != nil {
				return errors.Wrap(err, "failed to clear alert log")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "alert log cleared")

			return nil
		}),
	}

	alerts.AddCommand(listCmd, clearCmd)

	return alerts
}

func formatFix(fix *entity.LocationFix) string {
	if fix == nil {
		return "-"
	}

	return fmt.Sprintf("%.5f,%.5f (±%.0fm)", fix.Latitude, fix.Longitude, fix.Accuracy)
}

func newContactsCmd(load loader) *cobra.Command {
	contacts := &cobra.Command{Use: "contacts", Short: "Emergency contact commands"}

	contacts.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List emergency contacts",
		RunE: withState(load, func(cmd *cobra.Command, _ []string, st *state) error {
			list, err := st.Contacts.LoadContacts(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to load contacts")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMERGENCY")
			for _, contact := range list {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", contact.ID, contact.Name, contact.Phone, contact.IsEmergency)
			}

			return w.Flush()
		}),
	})

	return contacts
}

func newProfileCmd(load loader) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "User profile commands"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored profile",
		RunE: withState(load, func(cmd *cobra.Command, _ []string, st *state) error {
			p, err := st.Profile.LoadProfile(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to load profile")
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Name:       %s\n", p.Name)
			_, _ = fmt.Fprintf(out, "Phone:      %s\n", p.Phone)
			_, _ = fmt.Fprintf(out, "Blood:      %s\n", p.BloodGroup)
			_, _ = fmt.Fprintf(out, "Conditions: %s\n", p.MedicalConditions)
			_, _ = fmt.Fprintf(out, "Note:       %s\n", p.EmergencyNote)

			return nil
		}),
	})

	var outPath string
	qrCmd := &cobra.Command{
		Use:   "qrcode",
		Short: "Write the medical ID card as a PNG",
		RunE: withState(load, func(cmd *cobra.Command, _ []string, st *state) error {
			p, err := st.Profile.LoadProfile(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to load profile")
			}
			list, err := st.Contacts.LoadContacts(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to load contacts")
			}

			png, err := st.QRCode.GenerateMedicalID(p, list)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, png, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %s", outPath)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(png))

			return nil
		}),
	}
	qrCmd.Flags().StringVar(&outPath, "out", "medical-id.png", "output file")

	profile.AddCommand(qrCmd)

	return profile
}
