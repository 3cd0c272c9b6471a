// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
//   - [BotClient]: the remote chat endpoint (verify, send, edit, upload)
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [LineSource]: a producer of log lines for the CLI
//
// The application layer (internal/app) depends only on these interfaces;
// concrete implementations live under internal/adapters. Tests substitute
// fakes for the same interfaces.
package ports
