/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package tool

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat represent the output format supported by the subcommands
type OutputFormat string

const (
	// OutputFormatText means just use a human-readable output
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON means use machine-readable JSON output
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML means use machine-readable YAML output
	OutputFormatYAML OutputFormat = "yaml"
)

// Print outputs the object to the writer in the requested
// machine-readable format
func Print(obj interface{}, format OutputFormat, writer io.Writer) error {
	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(writer, string(data))
		return err

	case OutputFormatYAML:
		data, err := yaml.Marshal(obj)
		if err != nil {
			return err
		}
		_, err = writer.Write(data)
		return err

	case OutputFormatText:
		return nil

	default:
		return fmt.Errorf("unknown output format: %v", format)
	}
}
