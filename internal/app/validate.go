package app

import (
	"context"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	desc := s.Resolver.Resolve(ctx, req.Path, req.Format)
	applyOptions(desc, req.Options)
	plan, err := s.Codecs.Select(ctx, desc)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Summary: summarize(desc, req.Path),
		Plan:    plan,
	}, nil
}
