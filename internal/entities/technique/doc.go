// Package technique holds the data model of the technique configurator:
// catalog effects and their options, the effect instances added to a
// technique and the technique aggregate itself.
//
// Catalog values (Effect, SelectOption, BooleanOption) are immutable once
// loaded and may be shared between effects. Technique and EffectInstance are
// plain values owned by a single draft session.
package technique
