// Package dotfiles rewrites shell startup files to wire in the direnv
// hook and, on macOS, a nix-daemon failsafe snippet.
//
// Rewrites are idempotent: previously inserted lines are stripped before
// the new ones are added, and runs of blank lines are collapsed so files
// do not grow across repeated runs. Every rewrite is guarded by a scoped
// backup of the original file which is restored if the write fails.
package dotfiles
