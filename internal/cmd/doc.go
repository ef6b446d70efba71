// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// [RunContext] and [OutputContext] wrap [os/exec.CommandContext], capture
// stderr and use it as the error message, so a failing `ghq root` or
// `git remote get-url` reports what the tool itself said.
//
// Every invocation is reported to the context logger via
// [log.Logger.Command], which prints it with its duration in verbose mode.
//
// ghqmv shells out to git and ghq rather than reimplementing them so user
// configuration (remotes, ghq.root settings) is honoured exactly.
package cmd
