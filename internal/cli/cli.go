// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/treeview/internal/commands"
	"github.com/temirov/treeview/internal/config"
	"github.com/temirov/treeview/internal/scan"
	"github.com/temirov/treeview/internal/services/clipboard"
	"github.com/temirov/treeview/internal/utils"
)

const (
	rootUse              = "treeview [paths...]"
	rootShortDescription = "render bounded directory trees"
	rootLongDescription  = `treeview scans directories and renders them as an ASCII tree,
a flat list, or a nested structure. Scans honor gitignore-style exclusion
rules, per-directory caps, and a global line budget; elided content is
reported through summary comments instead of being dropped silently.`
	rootUsageExample = `  # Render the current directory three levels deep
  treeview --depth 3

  # Newest files first, capped to 200 entries, excluding logs
  treeview --lines 200 --ignore "*.log" ./src

  # Structured output
  treeview --format nested ./cmd`

	depthFlagName        = "depth"
	linesFlagName        = "lines"
	foldersFirstFlagName = "folders-first"
	maxFoldersFlagName   = "max-folders"
	maxFilesFlagName     = "max-files"
	sortFlagName         = "sort"
	directionFlagName    = "direction"
	ignoreFlagName       = "ignore"
	formatFlagName       = "format"
	configFlagName       = "config"
	versionFlagName      = "version"
	copyFlagName         = "copy"

	depthFlagDescription        = "maximum traversal depth (0 = unlimited)"
	linesFlagDescription        = "global budget of rendered entries (0 = unlimited)"
	foldersFirstFlagDescription = "render folders before files within each directory"
	maxFoldersFlagDescription   = "per-directory folder cap (0 = unlimited)"
	maxFilesFlagDescription     = "per-directory file cap (0 = unlimited)"
	sortFlagDescription         = "sort key: name, created, or modified"
	directionFlagDescription    = "sort direction: asc or desc"
	ignoreFlagDescription       = "exclusion spec: inline gitignore text or a file: reference"
	formatFlagDescription       = "output mode: text, flat, or nested"
	configFlagDescription       = "path to a configuration file"
	versionFlagDescription      = "display application version"
	copyFlagDescription         = "copy rendered output to the clipboard"

	versionTemplate             = "treeview version: %s\n"
	defaultPath                 = "."
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	clipboardCopyErrorFormat    = "copying output to clipboard: %w"
	outputSeparator             = "\n"
)

// Execute runs the treeview application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// flagValues stores the scan-related flag targets of the root command.
type flagValues struct {
	maxDepth            int
	maxLines            int
	maxFolders          int
	maxFiles            int
	foldersFirst        bool
	sortKey             string
	sortDirection       string
	ignoreSpecification string
	outputMode          string
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var copyToClipboard bool
	var configurationFilePath string
	defaults := scan.DefaultOptions()
	values := flagValues{
		foldersFirst:  defaults.FoldersFirst,
		sortKey:       defaults.SortKey,
		sortDirection: defaults.SortDirection,
		outputMode:    defaults.OutputMode,
	}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}

			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}

			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: configurationFilePath,
			})
			if configurationError != nil {
				return configurationError
			}

			options, ignoreSpecification := assembleOptions(command, values, applicationConfiguration.Tree)
			return runScans(arguments, workingDirectory, ignoreSpecification, options, clipboard.NewService(), copyToClipboard)
		},
	}

	rootCommand.Flags().IntVar(&values.maxDepth, depthFlagName, 0, depthFlagDescription)
	rootCommand.Flags().IntVar(&values.maxLines, linesFlagName, 0, linesFlagDescription)
	rootCommand.Flags().BoolVar(&values.foldersFirst, foldersFirstFlagName, defaults.FoldersFirst, foldersFirstFlagDescription)
	rootCommand.Flags().IntVar(&values.maxFolders, maxFoldersFlagName, 0, maxFoldersFlagDescription)
	rootCommand.Flags().IntVar(&values.maxFiles, maxFilesFlagName, 0, maxFilesFlagDescription)
	rootCommand.Flags().StringVar(&values.sortKey, sortFlagName, defaults.SortKey, sortFlagDescription)
	rootCommand.Flags().StringVar(&values.sortDirection, directionFlagName, defaults.SortDirection, directionFlagDescription)
	rootCommand.Flags().StringVar(&values.ignoreSpecification, ignoreFlagName, "", ignoreFlagDescription)
	rootCommand.Flags().StringVar(&values.outputMode, formatFlagName, defaults.OutputMode, formatFlagDescription)
	rootCommand.Flags().StringVar(&configurationFilePath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	registerCopyFlag(rootCommand.Flags(), &copyToClipboard)

	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// assembleOptions layers configuration file defaults over the built-in
// defaults and explicit flags over both. Option validation happens later in
// the command layer, so bad configuration values surface the same way as bad
// flag values.
func assembleOptions(command *cobra.Command, values flagValues, treeConfiguration config.TreeConfiguration) (scan.Options, string) {
	options := scan.DefaultOptions()
	ignoreSpecification := treeConfiguration.Ignore

	if treeConfiguration.Format != "" {
		options.OutputMode = treeConfiguration.Format
	}
	if treeConfiguration.FoldersFirst != nil {
		options.FoldersFirst = *treeConfiguration.FoldersFirst
	}
	if treeConfiguration.MaxDepth != nil {
		options.MaxDepth = *treeConfiguration.MaxDepth
	}
	if treeConfiguration.MaxLines != nil {
		options.MaxLines = *treeConfiguration.MaxLines
	}
	if treeConfiguration.MaxFolders != nil {
		options.MaxFolders = *treeConfiguration.MaxFolders
	}
	if treeConfiguration.MaxFiles != nil {
		options.MaxFiles = *treeConfiguration.MaxFiles
	}
	if treeConfiguration.SortKey != "" {
		options.SortKey = treeConfiguration.SortKey
	}
	if treeConfiguration.SortDirection != "" {
		options.SortDirection = treeConfiguration.SortDirection
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(depthFlagName) {
		options.MaxDepth = values.maxDepth
	}
	if commandFlags.Changed(linesFlagName) {
		options.MaxLines = values.maxLines
	}
	if commandFlags.Changed(foldersFirstFlagName) {
		options.FoldersFirst = values.foldersFirst
	}
	if commandFlags.Changed(maxFoldersFlagName) {
		options.MaxFolders = values.maxFolders
	}
	if commandFlags.Changed(maxFilesFlagName) {
		options.MaxFiles = values.maxFiles
	}
	if commandFlags.Changed(sortFlagName) {
		options.SortKey = values.sortKey
	}
	if commandFlags.Changed(directionFlagName) {
		options.SortDirection = values.sortDirection
	}
	if commandFlags.Changed(formatFlagName) {
		options.OutputMode = values.outputMode
	}
	if commandFlags.Changed(ignoreFlagName) {
		ignoreSpecification = values.ignoreSpecification
	}

	return options, ignoreSpecification
}

// runScans fans the path arguments out through an errgroup. Each scan is
// internally synchronous and owns all of its mutable state; only independent
// roots run concurrently. Outputs print in argument order.
func runScans(pathArguments []string, baseDirectory string, ignoreSpecification string, options scan.Options, copier clipboard.Copier, copyRequested bool) error {
	renderedOutputs := make([]string, len(pathArguments))
	var scanGroup errgroup.Group
	for argumentIndex, pathArgument := range pathArguments {
		argumentIndex, pathArgument := argumentIndex, pathArgument
		scanGroup.Go(func() error {
			renderedOutput, scanError := commands.RunTree(commands.TreeRequest{
				BaseDirectory: baseDirectory,
				RelativePath:  pathArgument,
				Ignore:        ignoreSpecification,
				Options:       options,
			})
			if scanError != nil {
				return scanError
			}
			renderedOutputs[argumentIndex] = renderedOutput
			return nil
		})
	}
	if waitError := scanGroup.Wait(); waitError != nil {
		return waitError
	}

	combinedOutput := strings.Join(renderedOutputs, outputSeparator)
	fmt.Println(combinedOutput)

	if copyRequested {
		if copyError := copier.Copy(combinedOutput); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}
