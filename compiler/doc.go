// Package compiler turns SeproLang model source text into a *sepro.Model.
// It is a thin collaborator, not part of the engine: nothing in the sepro
// package imports it, and it touches the engine only through sepro's
// exported model types.
package compiler
