// Package app contains the batching and flushing core of tgship.
//
// The Forwarder owns all mutable state: the pending buffer fed by Accept,
// the gate counters, the flood-control floor, and the remote session being
// edited in place. Remote operations go through the ports.BotClient
// interface and are executed serially by the single worker driven by Run.
package app
