package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nanorc-tools/nrc/rcfile"
)

var rootCmd = &cobra.Command{
	Use:   "nrc",
	Short: "nanorc keyword harvester",
	Long: "nrc scans C and C++ sources for the names introduced by typedef, class and namespace " +
		"declarations and adds them to the keyword section of a nanorc file.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("rcfile", "o", "~/.nanorc", "The rc (output) file")
	rootCmd.PersistentFlags().StringP("color", "c", "default", "Color of the keyword rules (default: brightcyan, brightyellow with --lib)")
	rootCmd.PersistentFlags().String("mode", "user", "Keyword section to work on: user or lib")
	rootCmd.PersistentFlags().Bool("lib", false, "Shorthand for --mode lib")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("lex-verbose", false, "Print every lexeme while scanning")
	rootCmd.PersistentFlags().BoolP("ctx-verbose", "x", false, "Print the source context of every new keyword")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable ANSI colors")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to every question")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: .nrc.yaml in $HOME or the working directory)")

	_ = viper.BindPFlag("rcfile", rootCmd.PersistentFlags().Lookup("rcfile"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("lib", rootCmd.PersistentFlags().Lookup("lib"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("lex_verbose", rootCmd.PersistentFlags().Lookup("lex-verbose"))
	_ = viper.BindPFlag("ctx_verbose", rootCmd.PersistentFlags().Lookup("ctx-verbose"))
	_ = viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
	_ = viper.BindPFlag("yes", rootCmd.PersistentFlags().Lookup("yes"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	viper.SetEnvPrefix("NRC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".nrc")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "[config] %v\n", err)
		}
	}
}

// settings are the root options shared by every command.
type settings struct {
	rcPath     string
	mode       rcfile.Mode
	section    rcfile.Section
	verbose    bool
	lexVerbose bool
	ctxVerbose bool
	ansi       bool
	yes        bool
}

func loadSettings() (settings, error) {
	path, err := expandHome(viper.GetString("rcfile"))
	if err != nil {
		return settings{}, err
	}
	mode, err := rcfile.ParseMode(viper.GetString("mode"))
	if err != nil {
		return settings{}, err
	}
	if viper.GetBool("lib") {
		mode = rcfile.ModeLibrary
	}
	return settings{
		rcPath:     path,
		mode:       mode,
		section:    rcfile.NewSection(mode, viper.GetString("color")),
		verbose:    viper.GetBool("verbose"),
		lexVerbose: viper.GetBool("lex_verbose"),
		ctxVerbose: viper.GetBool("ctx_verbose"),
		ansi:       !viper.GetBool("plain") && os.Getenv("NO_COLOR") == "" && stdoutIsTerminal(),
		yes:        viper.GetBool("yes"),
	}, nil
}

// label is the section name used in messages, "User" or "Library".
func (s settings) label() string {
	if s.mode == rcfile.ModeLibrary {
		return "Library"
	}
	return "User"
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no rc file given")
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
