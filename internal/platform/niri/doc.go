// Package niri talks to the niri compositor over its IPC socket.
//
// The socket path comes from $NIRI_SOCKET. Requests and replies are single
// JSON lines; a reply is either {"Ok": ...} or {"Err": "..."}. One client holds
// one connection for the lifetime of an invocation.
package niri
