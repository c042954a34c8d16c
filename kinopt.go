// Package kinopt estimates kinetic rate-law parameters for a catalytic
// plug-flow reactor (methanol synthesis from CO2/CO/H2) by fitting the
// reactor model against experimental partial-pressure and
// formation-rate measurements. Each of the 24 candidate rate-law
// combinations is optimized by an independent worker sharing nothing
// but the experimental dataset and an advisory wall-clock deadline;
// results are merged into a single ranking.
package kinopt
