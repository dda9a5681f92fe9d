// Package errors provides the coded error type shared by every layer of the
// technique service.
//
// Repositories return NotFound/InvalidArgument/Internal, orchestrators add
// FailedPrecondition for lifecycle violations (for example adding an effect
// before a power level is chosen), and handlers convert to gRPC with
// ToGRPCError. The CLI converts back with FromGRPCError.
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load technique")
//	}
//
// Wrap keeps the code of a wrapped *Error, so a NotFound raised by a
// repository is still a NotFound after the orchestrator adds context.
//
// Field validation collects every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
package errors
