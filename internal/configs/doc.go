// Package configs resolves gistenv's configuration.
//
// Settings are read once at program start and passed down explicitly; no
// other package looks at the process environment. Each value is taken from
// the first source that sets it:
//
//  1. Environment variables (GISTENV_GIST_ID or GIST_ID, GISTENV_GITHUB_TOKEN
//     or GITHUB_TOKEN, GISTENV_ENCRYPTION_KEY or ENCRYPTION_KEY,
//     GISTENV_API_URL).
//  2. A .gistenv dotenv file in the working directory, or failing that in the
//     home directory. It uses the same variable names.
//  3. The user config at <UserConfigDir>/gistenv/config.toml:
//
//     [gist]
//     id = "..."
//     token = "..."
//
//     [encryption]
//     key = "..."
//
//     [api]
//     url = "https://api.github.com"
//
// The audit log defaults to $XDG_DATA_HOME/gistenv/audit.jsonl and can be
// redirected with GISTENV_AUDIT_LOG.
package configs
