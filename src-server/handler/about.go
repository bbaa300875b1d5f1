// This package contains all the Discord Interaction handlers
//
// There should be 2 functions per handler, one for adding the handler &
// information to send to Discord (public), and one for handling the
// interaction (private).
//
// Game flows that need buttons, dropdowns or modals register temporary
// per-game custom-id handlers through `appState.AddAppCmdHandler`;
// remember to `RemoveAppCmdHandler` them when the game reaches a terminal
// state.
//
// Only return errors when it's the backend's fault, nil if user's fault.
package handler
