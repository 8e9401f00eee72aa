package domain

import (
	"context"
	"log/slog"
)

type loggingMatcherService struct {
	logger *slog.Logger
	next   MatcherService
}

func NewLoggingMatcherService(logger *slog.Logger, next MatcherService) MatcherService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingMatcherService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingMatcherService) MatchSubnet(ctx context.Context, address, subnet string) (bool, error) {
	ok, err := s.next.MatchSubnet(ctx, address, subnet)
	if err != nil {
		s.logger.ErrorContext(ctx, "match subnet failed", "address", address, "subnet", subnet, "err", err.Error())
		return false, err
	}

	s.logger.DebugContext(ctx, "match subnet", "address", address, "subnet", subnet, "matched", ok)
	return ok, nil
}

func (s *loggingMatcherService) MatchAnySubnet(ctx context.Context, address string, subnets []string) (bool, error) {
	ok, err := s.next.MatchAnySubnet(ctx, address, subnets)
	if err != nil {
		s.logger.ErrorContext(ctx, "match any subnet failed", "address", address, "err", err.Error())
		return false, err
	}

	s.logger.DebugContext(ctx, "match any subnet", "address", address, "subnets", len(subnets), "matched", ok)
	return ok, nil
}

func (s *loggingMatcherService) MatchAllSubnets(ctx context.Context, address string, subnets []string) (bool, error) {
	ok, err := s.next.MatchAllSubnets(ctx, address, subnets)
	if err != nil {
		s.logger.ErrorContext(ctx, "match all subnets failed", "address", address, "err", err.Error())
		return false, err
	}

	s.logger.DebugContext(ctx, "match all subnets", "address", address, "subnets", len(subnets), "matched", ok)
	return ok, nil
}

func (s *loggingMatcherService) MatchAddresses(ctx context.Context, addresses, subnets []string) (bool, error) {
	ok, err := s.next.MatchAddresses(ctx, addresses, subnets)
	if err != nil {
		s.logger.ErrorContext(ctx, "match addresses failed", "addresses", len(addresses), "err", err.Error())
		return false, err
	}

	s.logger.DebugContext(ctx, "match addresses", "addresses", len(addresses), "subnets", len(subnets), "matched", ok)
	return ok, nil
}

func (s *loggingMatcherService) ListSets(ctx context.Context) ([]SubnetSet, error) {
	sets, err := s.next.ListSets(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list sets failed", "err", err.Error())
	}
	return sets, err
}

func (s *loggingMatcherService) CreateSet(ctx context.Context, input CreateSetInput) (SubnetSet, error) {
	set, err := s.next.CreateSet(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create set failed", "name", input.Name, "err", err.Error())
		return SubnetSet{}, err
	}

	s.logger.InfoContext(ctx, "set created", "name", set.Name, "cidrs", len(set.CIDRs))
	return set, nil
}

func (s *loggingMatcherService) GetSet(ctx context.Context, name string) (SubnetSet, error) {
	set, err := s.next.GetSet(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "get set failed", "name", name, "err", err.Error())
	}
	return set, err
}

func (s *loggingMatcherService) DeleteSet(ctx context.Context, name string) error {
	err := s.next.DeleteSet(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete set failed", "name", name, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "set deleted", "name", name)
	return nil
}

func (s *loggingMatcherService) MatchSet(ctx context.Context, name, address string) (bool, error) {
	ok, err := s.next.MatchSet(ctx, name, address)
	if err != nil {
		s.logger.ErrorContext(ctx, "match set failed", "name", name, "address", address, "err", err.Error())
		return false, err
	}

	s.logger.DebugContext(ctx, "match set", "name", name, "address", address, "matched", ok)
	return ok, nil
}
