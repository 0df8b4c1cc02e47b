// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AleutianAI/ninjadeps/cmd/ninjadeps/internal/depslog"
	"github.com/AleutianAI/ninjadeps/pkg/ux"
)

// outputJSON writes data as indented JSON to stdout.
func outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// outputError reports a command failure in the active output format.
// JSON mode emits a failure envelope on stdout so scripted callers can
// parse it; text mode styles the message on stderr and leaves stdout
// untouched.
func outputError(msg string, err error) {
	if jsonOutput {
		result := map[string]interface{}{
			"api_version": depslog.APIVersion,
			"success":     false,
			"error":       fmt.Sprintf("%s: %v", msg, err),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(result)
	} else {
		ux.Error(fmt.Sprintf("%s: %v", msg, err))
	}
}
