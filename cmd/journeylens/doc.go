// Command journeylens analyzes screen recordings, reconstructs the user
// journey they show, and compares it against a specification document.
package main
