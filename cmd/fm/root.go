package main

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rwx-research/fm-cli/internal/cli"
	"github.com/rwx-research/fm-cli/internal/codec"
	"github.com/rwx-research/fm-cli/internal/config"
	"github.com/rwx-research/fm-cli/internal/digest"
	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/fs"
	"github.com/rwx-research/fm-cli/internal/logging"
	"github.com/rwx-research/fm-cli/internal/pathctx"
	"github.com/rwx-research/fm-cli/internal/shell"
	"github.com/rwx-research/fm-cli/internal/sysinfo"
)

var (
	Debug       bool
	Username    string
	CodecName   string
	HashName    string
	AskUsername bool

	rootCmd = &cobra.Command{
		Use:               "fm",
		Short:             "An interactive file manager for the terminal",
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Version:           config.Version,
		PersistentPreRunE: resolveSettings,
		RunE:              runShell,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.Flags().StringVar(&Username, "username", "User", "the name used to greet you (or set FM_USERNAME)")
	rootCmd.Flags().StringVar(&CodecName, "codec", codec.Default, "the compression format used by compress and decompress: "+strings.Join(codec.Names(), ", ")+" (or set FM_CODEC)")
	rootCmd.Flags().StringVar(&HashName, "hash", string(digest.Default), "the algorithm used by hash (or set FM_HASH)")
	rootCmd.Flags().BoolVar(&AskUsername, "ask-username", false, "prompt for the name interactively when --username is not given")
}

// resolveSettings fills every flag that was not given on the command line
// from the environment and sets up logging.
func resolveSettings(cmd *cobra.Command, _ []string) error {
	env, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("username") {
		Username = env.Username
	}
	if !flags.Changed("codec") {
		CodecName = env.Codec
	}
	if !flags.Changed("hash") {
		HashName = env.Hash
	}

	level, err := logging.ParseLevel(env.LogLevel)
	if err != nil {
		return err
	}
	if Debug {
		level = zerolog.DebugLevel
	}
	logging.Initialize(os.Stderr, level)

	if AskUsername && !flags.Changed("username") {
		prompt := promptui.Prompt{
			Label:   "Username",
			Default: Username,
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("Username must be provided")
				}

				return nil
			},
		}
		username, err := prompt.Run()
		if err != nil {
			return err
		}

		Username = username
	}

	return config.Env{
		Username: Username,
		Codec:    CodecName,
		Hash:     HashName,
		LogLevel: env.LogLevel,
	}.Validate()
}

func runShell(_ *cobra.Command, _ []string) error {
	host := sysinfo.Host{}
	fileSystem := fs.Local{}

	home, err := host.HomeDir()
	if err != nil {
		return err
	}

	paths, err := pathctx.New(pathctx.Config{FileSystem: fileSystem, Home: home})
	if err != nil {
		return err
	}

	selectedCodec, err := codec.Lookup(CodecName)
	if err != nil {
		return err
	}

	engineLogger := logging.Get("engine")
	engine, err := cli.NewEngine(cli.Config{
		FileSystem:   fileSystem,
		Paths:        paths,
		SystemInfo:   host,
		Codec:        selectedCodec,
		Digest:       digest.Algorithm(HashName),
		Collation:    config.CollationTag(),
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		ShowProgress: isTerminal(os.Stderr),
		FitTerminal:  isTerminal(os.Stdout),
		Logger:       &engineLogger,
	})
	if err != nil {
		return err
	}

	var reader shell.LineReader
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		if reader, err = shell.NewTerminalReader(); err != nil {
			return err
		}
	} else {
		reader = shell.NewScanReader(os.Stdin, os.Stdout)
	}

	shellLogger := logging.Get("shell")
	session, err := shell.New(shell.Config{
		Engine:   engine,
		Paths:    paths,
		Reader:   reader,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Username: Username,
		Logger:   &shellLogger,
	})
	if err != nil {
		reader.Close()
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	go awaitSignal(signals, session, reader, os.Exit)

	return session.Run()
}

// awaitSignal ends the session on the first signal. The reader is closed
// before exiting so the terminal leaves raw mode.
func awaitSignal(signals <-chan os.Signal, session interface{ Farewell() }, reader io.Closer, exit func(int)) {
	<-signals
	session.Farewell()
	reader.Close()
	exit(0)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
