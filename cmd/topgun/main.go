package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/config"
	"github.com/san-kum/topgun/internal/export"
	"github.com/san-kum/topgun/internal/gui"
	"github.com/san-kum/topgun/internal/logging"
	"github.com/san-kum/topgun/internal/plotdata"
	"github.com/san-kum/topgun/internal/session"
	"github.com/san-kum/topgun/internal/storage"
	"github.com/san-kum/topgun/internal/tui"
	"github.com/san-kum/topgun/internal/viz"
	"github.com/spf13/cobra"
)

var (
	chartOut    string
	chartFormat string
	chartTitle  string
	plotColor   bool
	plotAt      float64
	saveNote    string
	jsonOut     string

	closeLog = func() error { return nil }
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "topgun",
		Short:             "TOP Gun rifle precision calculator",
		Long:              "Estimates rifle group size from projectile weight, muzzle velocity and rifle weight using the TOP (Theory of Precision) Gun formula.",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runTUI,
	}
	addInputFlags(rootCmd)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved calculations")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "print group size and the 1 MOA value",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}
	addInputFlags(calcCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot expected precision in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	addInputFlags(plotCmd)
	plotCmd.Flags().BoolVar(&plotColor, "color", false, "color the chart with the theme")
	plotCmd.Flags().Float64Var(&plotAt, "at", 0, "also print the curve value nearest this x")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "render the precision chart to an image",
		Args:  cobra.NoArgs,
		RunE:  runChart,
	}
	addInputFlags(chartCmd)
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "topgun.png", "output file; the extension picks the format, '-' writes to stdout")
	chartCmd.Flags().StringVar(&chartFormat, "format", "png", "image format when writing to stdout")
	chartCmd.Flags().StringVar(&chartTitle, "title", "", "chart title")

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "save the calculation and its curve",
		Args:  cobra.NoArgs,
		RunE:  runSave,
	}
	addInputFlags(saveCmd)
	saveCmd.Flags().StringVar(&saveNote, "note", "", "free-form note stored with the record")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved calculations",
		Args:  cobra.NoArgs,
		RunE:  listRecords,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecord,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [id]",
		Short: "export a curve as CSV (current inputs when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addInputFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export a calculation as JSON (current inputs when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addInputFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "write to file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list cartridge presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	addInputFlags(configCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop calculator",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addInputFlags(guiCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "open the terminal calculator",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addInputFlags(tuiCmd)

	rootCmd.AddCommand(calcCmd, plotCmd, chartCmd, saveCmd, listCmd, showCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, configCmd, guiCmd, tuiCmd)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	var err error
	switch cmd.Name() {
	case "topgun", "tui":
		closeLog, err = logging.SetupTUI(logFile, logLevel)
	default:
		closeLog, err = logging.Setup(logFile, logLevel)
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, sess, err := resolveSession(cmd)
	if err != nil {
		return err
	}
	return tui.RunInteractive(tui.Options{
		Session: sess,
		Store:   storage.New(cfg.DataDir),
		Theme:   cfg.Theme,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, sess, err := resolveSession(cmd)
	if err != nil {
		return err
	}
	gui.Run(sess, storage.New(cfg.DataDir))
	return nil
}

// oneShot resolves the inputs and curve for the non-interactive commands.
// They solve for the same variable the interactive views derive; free from
// config only fills in when the selection is incomplete.
func oneShot(cmd *cobra.Command) (*config.Config, *session.Session, *plotdata.Series, error) {
	cfg, sess, err := resolveSession(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	fallback, err := cfg.FreeVariable()
	if err != nil {
		return nil, nil, nil, err
	}
	sess.Pin(fallback)
	series, _ := sess.Plot()
	return cfg, sess, series, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	_, sess, _, err := oneShot(cmd)
	if err != nil {
		return err
	}
	in := sess.Inputs
	readout, _ := sess.OneMOA()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, v := range ballistics.Variables {
		marker := ""
		if v == readout.Variable {
			marker = "(free)"
		}
		fmt.Fprintf(w, "%s\t%.1f %s\t%s\n", v.Label(), in.Get(v), v.Unit(), marker)
	}
	fmt.Fprintf(w, "Kinetic Energy\t%.0f ft·lbf\t\n", ballistics.KineticEnergy(in.ProjectileGrains, in.VelocityFPS))
	fmt.Fprintf(w, "Group Size\t%.2f MOA\t\n", sess.GroupSize())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(readout.String())
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, sess, series, err := oneShot(cmd)
	if err != nil {
		return err
	}
	readout, _ := sess.OneMOA()

	fmt.Printf("group size: %.2f MOA  |  %s\n\n", sess.GroupSize(), readout)
	fmt.Println(viz.Chart(series, viz.ChartOptions{
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		Theme:  viz.GetTheme(cfg.Theme),
		Color:  plotColor,
	}))

	if cmd.Flags().Changed("at") {
		p, ok := sess.HoverAt(plotAt)
		if !ok {
			return fmt.Errorf("no curve point near %g", plotAt)
		}
		fmt.Printf("\n%.1f %s → %.2f MOA\n", p.X, series.Free.Unit(), p.Y)
	}
	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	_, sess, series, err := oneShot(cmd)
	if err != nil {
		return err
	}
	title := chartTitle
	if title == "" {
		readout, _ := sess.OneMOA()
		title = fmt.Sprintf("TOP Gun: %s", readout)
	}

	if chartOut == "-" {
		return export.ChartTo(os.Stdout, series, title, chartFormat, export.DefaultChartWidth, export.DefaultChartHeight)
	}
	if err := export.Chart(chartOut, series, title, export.DefaultChartWidth, export.DefaultChartHeight); err != nil {
		return err
	}
	fmt.Printf("chart written to %s\n", chartOut)
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg, sess, series, err := oneShot(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rec := storage.NewRecord(cfg.Mode, sess.Inputs, series.Free)
	rec.Note = saveNote
	id, err := st.Save(rec, series)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Printf("saved %s\n", id)
	fmt.Printf("data: %s\n", filepath.Join(cfg.DataDir, id))
	return nil
}

func dataStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRecords(cmd *cobra.Command, args []string) error {
	st, err := dataStore(cmd)
	if err != nil {
		return err
	}
	records, err := st.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no saved calculations")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFREE\tPROJ\tVEL\tRIFLE\tGROUP\t1 MOA")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fgr\t%.0ffps\t%.1flbs\t%.2f\t%.1f %s\n",
			rec.ID,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Free,
			rec.Inputs.ProjectileGrains,
			rec.Inputs.VelocityFPS,
			rec.Inputs.RifleLbs,
			rec.GroupSize,
			rec.OneMOA,
			rec.OneMOAFor,
		)
	}
	return w.Flush()
}

func showRecord(cmd *cobra.Command, args []string) error {
	st, err := dataStore(cmd)
	if err != nil {
		return err
	}
	rec, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("id: %s\n", rec.ID)
	fmt.Printf("saved: %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("inputs: %.1f gr, %.0f fps, %.1f lbs\n", rec.Inputs.ProjectileGrains, rec.Inputs.VelocityFPS, rec.Inputs.RifleLbs)
	fmt.Printf("group size: %.2f MOA\n", rec.GroupSize)
	fmt.Printf("1 MOA @ %.1f %s\n", rec.OneMOA, rec.OneMOAFor)
	if rec.Note != "" {
		fmt.Printf("note: %s\n", rec.Note)
	}
	fmt.Println()
	fmt.Println(viz.Chart(series, viz.ChartOptions{
		Width:   config.DefaultChartWidth,
		Height:  config.DefaultChartHeight,
		Caption: fmt.Sprintf("%s, saved %s", series.YLabel, rec.Timestamp.Format("2006-01-02")),
	}))
	return nil
}

// recordAndCurve loads a saved calculation when args names one, otherwise
// computes one from the resolved inputs.
func recordAndCurve(cmd *cobra.Command, args []string) (*storage.Record, *plotdata.Series, error) {
	if len(args) == 1 {
		st, err := dataStore(cmd)
		if err != nil {
			return nil, nil, err
		}
		rec, err := st.Load(args[0])
		if err != nil {
			return nil, nil, err
		}
		series, err := st.LoadCurve(args[0])
		if err != nil {
			return nil, nil, err
		}
		return rec, series, nil
	}

	cfg, sess, series, err := oneShot(cmd)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewRecord(cfg.Mode, sess.Inputs, series.Free), series, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, series, err := recordAndCurve(cmd, args)
	if err != nil {
		return err
	}
	return export.CSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	rec, series, err := recordAndCurve(cmd, args)
	if err != nil {
		return err
	}
	if jsonOut != "" {
		return export.JSONFile(jsonOut, rec, series)
	}
	return export.JSON(os.Stdout, rec, series)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tPROJ\tVEL\tRIFLE\tGROUP")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		in := cfg.GetInputs()
		fmt.Fprintf(w, "%s\t%s\t%.0fgr\t%.0ffps\t%.1flbs\t%.2f MOA\n",
			name,
			config.PresetInfo(name),
			in.ProjectileGrains,
			in.VelocityFPS,
			in.RifleLbs,
			ballistics.GroupSize(in),
		)
	}
	return w.Flush()
}

// printConfig prints the configuration as the session sees it: inputs
// clamped and free matching the enabled pair.
func printConfig(cmd *cobra.Command, args []string) error {
	cfg, sess, err := resolveSession(cmd)
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, sess.Config(cfg))
}
