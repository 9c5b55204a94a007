package nix

import (
	"os"

	"github.com/beevik/etree"

	"github.com/arthur-debert/preflight/pkg/errors"
)

// DaemonPlistPath is where multi-user Nix installs register the daemon
// with launchd on macOS.
const DaemonPlistPath = "/Library/LaunchDaemons/org.nixos.nix-daemon.plist"

// daemonLabel is the launchd job label of the Nix daemon.
const daemonLabel = "org.nixos.nix-daemon"

// CheckDaemonPlist inspects the launchd property list of the Nix daemon.
// It is an advisory check for macOS multi-user installs: a missing or
// mangled plist is a common aftermath of OS upgrades. Single-user installs
// have no daemon, so callers treat errors as warnings, never failures.
func CheckDaemonPlist(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "nix-daemon launchd plist not found at %s", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "nix-daemon plist at %s is not valid XML", path)
	}

	dict := doc.FindElement("/plist/dict")
	if dict == nil {
		return errors.Newf(errors.ErrConfigParse, "nix-daemon plist at %s has no top-level dict", path)
	}

	// plist dicts are flat sequences of <key> elements each followed by a
	// value element; scan for the Label pair.
	children := dict.ChildElements()
	for i, el := range children {
		if el.Tag != "key" || el.Text() != "Label" {
			continue
		}
		if i+1 >= len(children) {
			break
		}
		if label := children[i+1].Text(); label != daemonLabel {
			return errors.Newf(errors.ErrConfigParse,
				"nix-daemon plist has unexpected label %q (want %q)", label, daemonLabel)
		}
		return nil
	}

	return errors.Newf(errors.ErrConfigParse, "nix-daemon plist at %s has no Label entry", path)
}
