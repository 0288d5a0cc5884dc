// SPDX-License-Identifier: MPL-2.0

package sidecar

import (
	"fmt"
	"os"
)

// template is the commented sample sidecar written by --generate-config.
// Every recognized key appears once, commented out, with its default.
const template = `# jarrun sidecar configuration
#
# Keys are case-insensitive. Unknown keys are ignored.
# Lines starting with # or ! are comments.

# JVM options, e.g. heap sizing or system properties.
#vm.args = -Xmx512m -Dapp.env=production

# Primary arguments. A non-empty value switches jarrun into configuration
# mode: the command line below is launched and anything typed at invocation
# time is appended after it.
#runtime.args = -jar app.jar

# Application arguments appended after runtime.args.
#app.args =

# Session log. Logging is off while log.file is empty.
#log.file = jarrun.log
#log.level = info
#log.overwrite = false

# Ahead-of-time cache. true/1 enables, false/0 disables; unset keeps the
# built-in default (enabled).
#aot.cache = true
`

// WriteTemplate writes the sample sidecar to path, refusing to clobber an
// existing configuration.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("sidecar file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return fmt.Errorf("failed to write sidecar template: %w", err)
	}
	return nil
}
