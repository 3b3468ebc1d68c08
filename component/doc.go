// Package component holds the toolkit independent state of the widgets:
// a text input with controlled and uncontrolled value ownership, a sliding
// sidebar with a nested menu, and an auto dismissing toast.
//
// Components never draw anything. Renderers (see package render) read the
// state through accessors and Subscribe to be told when it changed, including
// changes driven by the timers a component owns.
//
// Timers go through a Scheduler so tests and scripted demos can drive time
// with a ManualScheduler instead of sleeping.
package component
