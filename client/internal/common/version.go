// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package common

import (
	"fmt"

	"github.com/maruel/subcommands"
)

// CmdVersion returns a "version" subcommand printing the given version.
func CmdVersion(version string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "version",
		ShortDesc: "prints the tool version",
		LongDesc:  "Prints the tool version and exits.",
		CommandRun: func() subcommands.CommandRun {
			return &versionRun{version: version}
		},
	}
}

type versionRun struct {
	subcommands.CommandRunBase
	version string
}

func (c *versionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	fmt.Printf("%s v%s\n", a.GetName(), c.version)
	return 0
}
