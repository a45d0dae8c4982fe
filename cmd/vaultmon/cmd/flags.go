// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/oneconcern/vaultmon/pkg/dlogger"
	"github.com/spf13/cobra"
)

const defaultLogLevel = dlogger.LogLevelWarn

type flagsT struct {
	root struct {
		logLevel  string
		logFormat string
	}
	vault struct {
		path           string
		program        string
		extensions     []string
		skipSegments   []string
		defaultProgram string
		cacheSize      int
	}
	metadata struct {
		dryRun  bool
		quiet   bool
		markers bool
	}
	format struct {
		inspect string
		resolve string
	}
	doc struct {
		docTarget string
	}
}

var vaultmonFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := keyLogLevel
	cmd.PersistentFlags().StringVar(&vaultmonFlags.root.logLevel, logLevel, "",
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug (default: "+defaultLogLevel+")")
	return logLevel
}

func addLogFormatFlag(cmd *cobra.Command) string {
	logFormat := keyLogFormat
	cmd.PersistentFlags().StringVar(&vaultmonFlags.root.logFormat, logFormat, "",
		"The encoding of log entries: "+dlogger.FormatConsole+" or "+dlogger.FormatJSON+" (default: "+dlogger.FormatConsole+")")
	return logFormat
}

func addVaultFlag(cmd *cobra.Command) string {
	vault := keyVault
	cmd.PersistentFlags().StringVar(&vaultmonFlags.vault.path, vault, "", "The root directory of the vault (default: current directory)")
	return vault
}

func addProgramFlag(cmd *cobra.Command) string {
	program := keyProgram
	cmd.PersistentFlags().StringVar(&vaultmonFlags.vault.program, program, "",
		"Force the program of every note, regardless of program index notes")
	return program
}

func addExtensionsFlag(cmd *cobra.Command) string {
	extensions := keyExtensions
	cmd.PersistentFlags().StringSliceVar(&vaultmonFlags.vault.extensions, extensions, nil, "The extensions of notes (default: .md)")
	return extensions
}

func addSkipSegmentsFlag(cmd *cobra.Command) string {
	skip := keySkipSegments
	cmd.PersistentFlags().StringSliceVar(&vaultmonFlags.vault.skipSegments, skip, nil,
		"Directory names ignored when inferring the hierarchy from the location of notes (default: projects, materials, resources, attachments, archive)")
	return skip
}

func addDefaultProgramFlag(cmd *cobra.Command) string {
	program := keyDefaultProgram
	cmd.PersistentFlags().StringVar(&vaultmonFlags.vault.defaultProgram, program, "",
		"The program of notes for which no program could be resolved (default: \"Default Program\")")
	return program
}

func addCacheSizeFlag(cmd *cobra.Command) string {
	cacheSize := keyCacheSize
	cmd.PersistentFlags().IntVar(&vaultmonFlags.vault.cacheSize, cacheSize, 0,
		"The number of directories for which index notes are kept in memory during a run (0: default)")
	return cacheSize
}

func addDryRunFlag(cmd *cobra.Command) string {
	dryRun := "dry-run"
	cmd.Flags().BoolVar(&vaultmonFlags.metadata.dryRun, dryRun, false, "Report the changes without writing any note")
	return dryRun
}

func addQuietFlag(cmd *cobra.Command) string {
	quiet := "quiet"
	cmd.Flags().BoolVarP(&vaultmonFlags.metadata.quiet, quiet, "q", false, "Only print the summary")
	return quiet
}

func addMarkersFlag(cmd *cobra.Command) string {
	markers := "markers"
	cmd.Flags().BoolVar(&vaultmonFlags.metadata.markers, markers, false, "List the index notes found in parent directories")
	return markers
}

func addFormatFlag(cmd *cobra.Command, target *string, defaultFormat string, formats ...string) string {
	format := "format"
	cmd.Flags().StringVar(target, format, defaultFormat, "The output format: "+strings.Join(formats, ", "))
	return format
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target-dir"
	cmd.Flags().StringVar(&vaultmonFlags.doc.docTarget, target, ".", "The target directory to generate the markdown documentation")
	return target
}
