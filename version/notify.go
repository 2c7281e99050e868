package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/log"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/util"
)

// Notify prints a notice when a newer release exists and cli.version_check is set.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version, err := Latest(ctx)
	erase()
	if err != nil {
		log.Debugf("version check: %s", err)
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/webify-cli/webify/releases/tag/v"+version),
	)
}
