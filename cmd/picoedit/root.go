package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/picoedit"
	"github.com/iw2rmb/picoedit/editor"
	"github.com/iw2rmb/picoedit/input"
	"github.com/iw2rmb/picoedit/internal/config"
	"github.com/iw2rmb/picoedit/internal/logging"
)

func init() {
	// Query the terminal background before the program owns stdin so the
	// OSC 11 reply does not leak into the editor as typed text.
	_ = lipgloss.HasDarkBackground()
}

var (
	cfgFile string
	v       = config.New()
)

const welcome = "picoedit\n\nStart typing to edit.\nCtrl+Q quits. Esc leaves the editor, a click returns to it.\n"

var rootCmd = &cobra.Command{
	Use:           "picoedit [file]",
	Short:         "A tiny terminal code editor",
	Long:          `picoedit opens a file (or a scratch buffer) in an embeddable terminal code editor with line numbers and an optionally animated caret.`,
	Version:       picoedit.VersionTag(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	rootCmd.Flags().Bool("line-count", true, "show line numbers")
	rootCmd.Flags().Bool("gutter", true, "show the gutter strip")
	rootCmd.Flags().Bool("animated-cursor", false, "animate caret moves")
	rootCmd.Flags().Bool("readonly", false, "reject edits")
	rootCmd.Flags().Bool("debug", false, "log at debug level")
	rootCmd.Flags().String("log-file", "", "write logs to this file")

	_ = v.BindPFlag("editor.line_count", rootCmd.Flags().Lookup("line-count"))
	_ = v.BindPFlag("editor.gutter", rootCmd.Flags().Lookup("gutter"))
	_ = v.BindPFlag("editor.animated_cursor", rootCmd.Flags().Lookup("animated-cursor"))
	_ = v.BindPFlag("editor.readonly", rootCmd.Flags().Lookup("readonly"))
	_ = v.BindPFlag("log.debug", rootCmd.Flags().Lookup("debug"))
	_ = v.BindPFlag("log.file", rootCmd.Flags().Lookup("log-file"))
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.File(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	contents := welcome
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Errorf("reading %s: %w", args[0], err)
		}
		contents = string(data)
	}

	m, err := newApp(cfg, contents, logger)
	if err != nil {
		return err
	}
	m.editor.Controller().OnEvent(func(n editor.Notification) {
		logger.Debug().Stringer("event", n.Kind).Int("index", n.Index).Int("scroll", n.Scroll).Msg("editor event")
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}

type app struct {
	editor editor.Model
}

func newApp(cfg config.Config, contents string, logger zerolog.Logger) (app, error) {
	opts, err := cfg.EditorOptions(picoedit.TerminalOptions(), nil)
	if err != nil {
		return app{}, err
	}
	opts.Contents = contents
	opts.Logger = logger

	co := picoedit.FromOptions(opts)
	co.ReadOnly = cfg.Editor.ReadOnly
	co.Clipboard = input.System{}
	co.Model = editor.ModelOptions{
		WheelLines:    cfg.Editor.WheelLines,
		FrameInterval: time.Second / time.Duration(cfg.Editor.FrameRate),
	}
	m, err := picoedit.Create(co)
	if err != nil {
		return app{}, err
	}
	return app{editor: m}, nil
}

func (a app) Init() tea.Cmd {
	cmd := a.editor.Init()
	a.editor.Focus()
	return cmd
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+q":
			a.editor.Detach()
			return a, tea.Quit
		case "ctrl+c":
			if !a.editor.Focused() {
				a.editor.Detach()
				return a, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
