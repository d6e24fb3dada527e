// Package main implements the modbump CLI tool.
//
// The modbump tool reads a JSON manifest (default
// "Mods/TweaksAndStuff/modinfo.json"), increments the patch component of its
// "version" field (e.g. 1.2.3 → 1.2.4), rewrites the file with two space
// indentation while leaving every other field untouched, and prints the new
// version to stdout.
//
// Command Usage:
//
//	modbump [flags] [path]
//
// Flags:
//
//	-dry:      Prints the version that would be written without modifying the file.
//	-verbose:  Logs the read, bump and write steps to stderr.
//	-version:  Displays the version of the modbump CLI tool and exits.
//	-help:     Displays usage and exits.
//
// Exit codes:
//
//	0  The new version was printed (and written, unless -dry was given).
//	2  Anything went wrong. A message prefixed with "ERROR: " is printed to
//	   stderr and the file is left as it was.
//
// Examples:
//
//	# Bump the default manifest (1.2.3 → 1.2.4)
//	modbump
//
//	# Bump a specific file
//	modbump Mods/OtherMod/modinfo.json
//
//	# See what the next version would be
//	modbump -dry Mods/OtherMod/modinfo.json
//
// For the library API see the documentation of the "pkg" package.
package main
