// Package scaffold generates new projects from embedded template sets. It
// powers the "sprout create" command, rendering each template file with
// the questionnaire's answers and validating the produced package.json,
// surfacing validation problems as warnings rather than failures.
package scaffold
