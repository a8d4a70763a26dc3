// Package prompts builds the text sent to the model.
//
// The system prompts are compiled into the binary and cannot be edited by
// users. The user-prompt builders are pure functions of their arguments.
package prompts
