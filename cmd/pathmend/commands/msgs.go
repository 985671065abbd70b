package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "An idempotent filesystem state tool"
	MsgDirShort      = "Ensure a directory exists with the given attributes"
	MsgLinkShort     = "Ensure a symbolic link points at a target"
	MsgHardlinkShort = "Ensure a hard link shares its target's inode"
	MsgCleanShort    = "Remove a path, taking a backup first when configured"
	MsgMoveShort     = "Move a path, falling back to copy across filesystems"
	MsgStatusShort   = "Apply ownership, mode and mtime to a path"
	MsgListShort     = "List directory entries through composable filters"
	MsgExistsShort   = "Check whether a path exists"
	MsgConfigShort   = "Manage the pathmend configuration"
	MsgConfigInit    = "Write a commented starter config file"
	MsgConfigShow    = "Print the resolved configuration"
	MsgVersionShort  = "Print version information"
	MsgManShort      = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSimulate  = "Report what would change without touching the filesystem"
	MsgFlagForce     = "Replace files standing where a link must go"
	MsgFlagKeepState = "Execute even under --simulate; for operations that maintain state rather than change it"
	MsgFlagOutput    = "Output format: auto, term, text, json or yaml"
	MsgFlagConfig    = "Config file (default is pathmend.toml in the config directory)"
	MsgFlagBackup    = "Backup suffix for destructive steps; empty disables backups"
	MsgFlagRunAs     = "Run as user[:group] by switching effective ids for the operation"
	MsgFlagTemp      = "Treat PATH as a template and create a unique temporary directory"
	MsgFlagOwner     = "Desired owner, a user name or numeric uid"
	MsgFlagGroup     = "Desired group, a group name or numeric gid"
	MsgFlagMode      = "Desired permission bits, octal (e.g. 755 or 4755)"
	MsgFlagMTime     = "Desired modification time, RFC3339 or Unix seconds"
	MsgFlagCheck     = "Require the target to exist before linking"
	MsgFlagFilter    = "Keep entries whose name matches this regular expression"
	MsgFlagFiles     = "Keep only entries that are regular files"
	MsgFlagInverse   = "Invert the combined filter decision"
	MsgFlagAddDir    = "Prefix every entry with the directory path"
	MsgFlagType      = "Existence kind to check: any, file, dir or symlink"
	MsgFlagManDir    = "Directory to write the man pages into"

	// Status messages
	MsgConfigInitDone   = "Wrote starter config to %s"
	MsgConfigInitExists = "config file already exists at %s (use --force to overwrite)"
)

// Long messages (multi-line help)
const (
	MsgRootLong = `pathmend makes filesystem paths match declared target state: directories,
symbolic and hard links, removals, moves, ownership, permissions and
timestamps. Every operation is idempotent and reports one of three
outcomes: failed, unchanged or changed.

Under --simulate nothing is modified, but every read still happens, so the
reported outcome is the one a real run would produce. Destructive steps can
take a backup first, controlled by --backup or the backup_suffix config key.`

	MsgDirLong = `Ensure a directory exists at PATH with the given ownership, permission and
timestamp attributes. Missing parents are created.

With --temp, PATH is a template: a trailing run of X characters in its last
component marks where a unique suffix goes. The created directory is
removed automatically when pathmend exits, and its resolved path is
reported in the outcome.`

	MsgLinkLong = `Ensure LINK is a symbolic link pointing at TARGET. An existing symlink is
retargeted in place. A regular file standing at LINK is only replaced under
--force, honoring the backup suffix; directories are never replaced.

With --check, the command fails when TARGET does not exist.`

	MsgHardlinkLong = `Ensure LINK is a hard link sharing TARGET's inode. TARGET must exist. An
existing non-directory at LINK pointing elsewhere is re-linked; a regular
file of different content is only replaced under --force, honoring the
backup suffix; directories are never replaced.`

	MsgCleanLong = `Remove PATH, files and directory trees alike. When a backup suffix is in
effect the path is renamed to its backup sibling instead of being deleted,
and a stale backup from an earlier run is destroyed first. An absent PATH
is a successful, unchanged outcome.`

	MsgMoveLong = `Move SRC to DEST, creating DEST's parent when missing. An absent SRC is a
successful, unchanged outcome. When a backup suffix is in effect an
existing DEST is preserved at its backup sibling via hard link before the
move. A move across filesystems falls back to copy and delete, preserving
modes, symlink targets and file timestamps.`

	MsgStatusLong = `Apply ownership, permission bits and modification time to PATH. Only the
attributes given as flags are touched; each is compared first and applied
only on mismatch, so a second run reports unchanged. PATH must exist.`

	MsgListLong = `List the entries of DIR. Filters combine: a name pattern (--filter), a
regular-file requirement (--files), and --inverse flips the combined
decision. Entries are reported sorted; --add-dir prefixes each with DIR.`

	MsgExistsLong = `Check whether PATH exists, following symlinks except for --type symlink.
The exit status is 0 when present and 1 when absent, so the command
composes in shell conditionals.`

	MsgConfigShowLong = `Print the configuration after resolving all layers: built-in defaults,
the config file, PATHMEND_* environment variables and command-line flags.
Machine formats render the resolved values as JSON or YAML; otherwise the
native TOML form is printed.`
)

// Examples
const (
	MsgDirExample = `  # Ensure a directory with mode 0750
  pathmend dir /srv/app/data --mode 750

  # Unique scratch directory under /tmp, removed on exit
  pathmend dir /tmp/build-XXXX --temp`

	MsgLinkExample = `  # Point ~/.bashrc at a managed copy
  pathmend link ~/dotfiles/bashrc ~/.bashrc

  # Replace a stray file, keeping it at ~/.bashrc.orig
  pathmend link ~/dotfiles/bashrc ~/.bashrc --force --backup .orig`

	MsgMoveExample = `  # Preview a move
  pathmend move /etc/app.conf /etc/app/app.conf --simulate

  # Move, preserving the old destination at a backup path
  pathmend move new.conf current.conf --backup .prev`

	MsgListExample = `  # Configuration fragments, full paths
  pathmend list /etc/app.d --filter '\.conf$' --add-dir

  # Everything that is not a regular file
  pathmend list /var/spool --files --inverse`
)
