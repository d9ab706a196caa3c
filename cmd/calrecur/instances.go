package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kjdev/calrecur/icsadapter"
	"github.com/kjdev/calrecur/model"
	"github.com/kjdev/calrecur/parse"
	"github.com/kjdev/calrecur/recur"
)

const dateFlagFormat = "2006-01-02"

var (
	instancesUID  string
	instancesFrom string
	instancesTo   string
	instancesSkip int
	instancesTake int
)

var instancesCmd = &cobra.Command{
	Use:   "instances [file]",
	Short: "Print the occurrence dates of a VEVENT",
	Long: `Reads an .ics file (or "-" for stdin), selects the VEVENT matching
--uid, and prints one instance per line within the given window.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstances,
}

func init() {
	rootCmd.AddCommand(instancesCmd)

	instancesCmd.Flags().StringVar(&instancesUID, "uid", "", "UID of the VEVENT to expand (required)")
	instancesCmd.Flags().StringVar(&instancesFrom, "from", "", "lower bound, "+dateFlagFormat)
	instancesCmd.Flags().StringVar(&instancesTo, "to", "", "upper bound, "+dateFlagFormat)
	instancesCmd.Flags().IntVar(&instancesSkip, "skip", 0, "number of leading instances to skip")
	instancesCmd.Flags().IntVar(&instancesTake, "take", 0, "maximum instances to print (defaults to page-size)")
	_ = instancesCmd.MarkFlagRequired("uid")
}

func runInstances(cmd *cobra.Command, args []string) error {
	log := logger.WithField("uid", instancesUID)

	calendar, err := readCalendar(args[0])
	if err != nil {
		log.WithError(err).Error("failed to parse calendar")
		return err
	}

	event, err := findEvent(calendar, instancesUID)
	if err != nil {
		log.WithError(err).Error("event not found")
		return err
	}

	recurEvent, err := icsadapter.ToRecurEvent(*event)
	if err != nil {
		log.WithError(err).Error("failed to adapt event")
		return err
	}

	window, err := buildWindow()
	if err != nil {
		return err
	}

	instances, err := recur.Instances(recurEvent, window)
	if err != nil {
		log.WithError(err).Error("failed to expand instances")
		return err
	}

	log.WithField("count", len(instances)).Debug("expanded instances")

	for _, instance := range instances {
		fmt.Fprintln(cmd.OutOrStdout(), formatInstance(instance, recurEvent.HasTime))
	}
	return nil
}

func readCalendar(path string) (*model.Calendar, error) {
	if path == "-" {
		return parse.IcalReader(os.Stdin)
	}
	return parse.IcalFromFileName(path)
}

func findEvent(calendar *model.Calendar, uid string) (*model.Event, error) {
	for i := range calendar.Events {
		if calendar.Events[i].UID == uid {
			return &calendar.Events[i], nil
		}
	}
	return nil, fmt.Errorf("no VEVENT with UID %q", uid)
}

func buildWindow() (recur.Window, error) {
	window := recur.Window{Skip: instancesSkip, Take: instancesTake}
	if window.Take == 0 {
		window.Take = viper.GetInt("page-size")
	}

	if instancesFrom != "" {
		from, err := time.Parse(dateFlagFormat, instancesFrom)
		if err != nil {
			return recur.Window{}, fmt.Errorf("invalid --from: %w", err)
		}
		window.From = &from
	}
	if instancesTo != "" {
		to, err := time.Parse(dateFlagFormat, instancesTo)
		if err != nil {
			return recur.Window{}, fmt.Errorf("invalid --to: %w", err)
		}
		window.To = &to
	}
	return window, nil
}

func formatInstance(instance recur.Instance, hasTime bool) string {
	if hasTime {
		return instance.Start.Format(time.RFC3339)
	}
	return instance.Start.Format(dateFlagFormat)
}
