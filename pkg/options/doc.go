// Package options renders selectable option buttons into a container element
// and reads the active selections back.
//
// A Group is either MultiSelect (each click toggles one button) or
// SingleSelect (a click activates the clicked button and clears its
// siblings; the first button starts active so exactly one is always active).
// Toggle binds the solo/group switch, whose two buttons carry the values
// "false" and "true".
package options
