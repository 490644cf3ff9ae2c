// Package ui is the Bubble Tea front end of the lead console.
//
// Core abstractions:
//   - View: a screen or panel with its own Init/Update/View (Elm-style)
//   - AppModel: root model switching between the login screen and the dashboard
//   - KeybindRegistry / KeyHandler: SPC-leader command bindings, filtered by mode
//   - FocusManager: tab order across the fields of a form
//   - OverlayStack: modals (pickers, confirmations) that receive input first
//
// The AppModel owns a console.Service; views never call it directly. They
// emit messages, and the app's handlers apply them and push fresh data back.
package ui
