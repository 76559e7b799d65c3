// Package cli provides the interactive archive vault command-line client.
//
// On start the App asks for the master password and opens the vault file, or
// creates a new vault when the file does not exist yet. It then runs a REPL
// until the user exits. Changes live in memory until "save" (or "exit", which
// saves pending changes) seals the repository back to disk.
//
// Commands:
//   - info, list, show <id>, reveal <id> <field>, history <id>
//   - addlogin, addnote, attach <id> <path>, export <id> <attachment-id> <path>
//   - tag <id> <tag>, delete <id>
//   - passwd, save, exit
package cli
