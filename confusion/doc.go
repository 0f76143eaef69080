// Package confusion accumulates a confusion matrix over (true, predicted)
// class pairs and renders it as CSV. Plotting/visualization is out of
// scope — no charting library exists anywhere in this module's reference
// material, so the only rendering this package offers is the CSV table
// the external interface contract specifies.
package confusion
