package main

// Message constants
const (
	MsgRootShort = "Check that this machine is ready for the Nix development environment"
	MsgRootLong  = `preflight verifies that Nix and direnv are installed and correctly
configured before the development environment is bootstrapped.

It checks that the nix binary is callable, that direnv is present at a
recent enough version (offering to install it via Nix when it is not),
wires the direnv hook into your shell startup files, and validates the
effective nix.conf against the settings the bootstrap requires.

The process exits 0 when every check passes and 1 otherwise.`

	MsgVersionShort = "Print version information"
	MsgDocsShort    = "Show documentation about the readiness checks"
	MsgDocsLong     = `Show documentation topics explaining what preflight checks and how
to fix a failing check. Run without arguments to list available topics.`
)
