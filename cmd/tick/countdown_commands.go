package main

import (
	"fmt"
	"time"

	"github.com/aBirrueta/Tick/countdown"
	"github.com/spf13/cobra"
)

// tick add
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new countdown",
	Long: `Add a new countdown.

The target date may be absolute (2026-12-31, "2026-12-31 18:00", RFC3339)
or relative to now with a leading plus sign (+72h, +30m).`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addTarget string
	addNote   string
)

// tick list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List countdowns",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listActive bool
	listJSON   bool
)

// tick show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about countdowns",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// tick update
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a countdown",
	Aliases: []string{
		"edit",
	},
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateName   string
	updateTarget string
	updateNote   string
)

// tick start
var startCmd = &cobra.Command{
	Use:   "start <id>...",
	Short: "Start one or more countdowns",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStart,
}

// tick stop
var stopCmd = &cobra.Command{
	Use:   "stop <id>...",
	Short: "Stop one or more countdowns",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStop,
}

// tick stop-all
var stopAllCmd = &cobra.Command{
	Use:   "stop-all",
	Short: "Stop every running countdown",
	Args:  cobra.NoArgs,
	RunE:  runStopAll,
}

// tick rm
var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove one or more countdowns",
	Aliases: []string{
		"delete",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, updateCmd, startCmd, stopCmd, stopAllCmd, rmCmd)
	addTargetFlagAliases(addCmd, updateCmd)

	// add flags
	addCmd.Flags().StringVarP(&addTarget, "target", "t", "", "Target date (required)")
	addCmd.Flags().StringVarP(&addNote, "note", "n", "", "Markdown note")
	_ = addCmd.MarkFlagRequired("target")

	// list flags
	listCmd.Flags().BoolVarP(&listActive, "active", "a", false, "Only show running countdowns")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	// update flags
	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVarP(&updateTarget, "target", "t", "", "New target date")
	updateCmd.Flags().StringVarP(&updateNote, "note", "n", "", "New markdown note")
}

func runAdd(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	target, err := parseTargetTime(addTarget, time.Now())
	if err != nil {
		return err
	}

	created, err := engine.Add(args[0], target, countdown.AddOptions{Note: addNote})
	if err != nil {
		return err
	}

	highlight := countdownHighlighter(engine)
	fmt.Printf("Added countdown %s: %s\n", highlight(created.ID), created.Name)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	entities := engine.Entities()
	if listActive {
		filtered := entities[:0]
		for _, entity := range entities {
			if entity.IsActive {
				filtered = append(filtered, entity)
			}
		}
		entities = filtered
	}

	if listJSON {
		if entities == nil {
			entities = []countdown.Entity{}
		}
		return encodeJSONToStdout(entities)
	}

	index := countdown.NewIDIndex(engine.Entities())
	printCountdownTable(entities, index.PrefixLengths(), time.Now())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ids, err := resolveCountdownIDs(engine, args)
	if err != nil {
		return err
	}

	entities := make([]countdown.Entity, 0, len(ids))
	for _, id := range ids {
		entity, ok := engine.Get(id)
		if !ok {
			return fmt.Errorf("%w: %s", countdown.ErrNotFound, id)
		}
		entities = append(entities, entity)
	}

	if showJSON {
		return encodeJSONToStdout(entities)
	}

	highlight := countdownHighlighter(engine)
	now := time.Now()
	for i, entity := range entities {
		if i > 0 {
			fmt.Println("---")
		}
		printCountdownDetail(entity, highlight, now)
	}
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("target") && !cmd.Flags().Changed("note") {
		return fmt.Errorf("at least one of --name, --target, or --note is required")
	}

	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	id, err := engine.Resolve(args[0])
	if err != nil {
		return err
	}

	entity, ok := engine.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", countdown.ErrNotFound, id)
	}

	if cmd.Flags().Changed("name") {
		entity.Name = updateName
	}
	if cmd.Flags().Changed("target") {
		target, err := parseTargetTime(updateTarget, time.Now())
		if err != nil {
			return err
		}
		entity.TargetDate = target
	}
	if cmd.Flags().Changed("note") {
		entity.Note = updateNote
	}

	if err := engine.Update(entity); err != nil {
		return err
	}

	highlight := countdownHighlighter(engine)
	fmt.Printf("Updated countdown %s: %s\n", highlight(entity.ID), entity.Name)
	return nil
}

func runStart(cmd *cobra.Command, args []string) error {
	return runLifecycleAction(args, "Started", (*countdown.Engine).Start)
}

func runStop(cmd *cobra.Command, args []string) error {
	return runLifecycleAction(args, "Stopped", (*countdown.Engine).Stop)
}

func runStopAll(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	stopped := len(engine.ActiveIDs())
	engine.StopAll()
	fmt.Printf("Stopped %d countdown(s)\n", stopped)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ids, err := resolveCountdownIDs(engine, args)
	if err != nil {
		return err
	}

	highlight := countdownHighlighter(engine)
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if entity, ok := engine.Get(id); ok {
			names[id] = entity.Name
		}
	}

	engine.DeleteMany(ids)
	for _, id := range ids {
		fmt.Printf("Removed countdown %s: %s\n", highlight(id), names[id])
	}
	return nil
}

func runLifecycleAction(args []string, verb string, action func(*countdown.Engine, string) bool) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ids, err := resolveCountdownIDs(engine, args)
	if err != nil {
		return err
	}

	highlight := countdownHighlighter(engine)
	for _, id := range ids {
		action(engine, id)
		entity, ok := engine.Get(id)
		if !ok {
			continue
		}
		fmt.Printf("%s countdown %s: %s\n", verb, highlight(entity.ID), entity.Name)
	}
	return nil
}
