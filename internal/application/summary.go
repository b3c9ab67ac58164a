package application

import "github.com/bnema/load-velocity-cli/internal/domain"

// CustomerTally counts decision outcomes for one customer.
type CustomerTally struct {
	Accepted int
	Rejected int
}

// Summary aggregates one run. Attempts counts every well-formed record,
// duplicates included; Malformed counts skipped unparsable records (always
// zero under the abort policy).
type Summary struct {
	Attempts   int
	Accepted   int
	Rejected   int
	Duplicates int
	Malformed  int
	Customers  map[domain.CustomerID]CustomerTally
}

func newSummary() Summary {
	return Summary{Customers: make(map[domain.CustomerID]CustomerTally)}
}

func (s *Summary) record(customerID domain.CustomerID, decision domain.Decision, emitted bool) {
	s.Attempts++

	if !emitted {
		s.Duplicates++
		return
	}

	tally := s.Customers[customerID]
	if decision.Accepted {
		s.Accepted++
		tally.Accepted++
	} else {
		s.Rejected++
		tally.Rejected++
	}
	s.Customers[customerID] = tally
}

// Decisions returns the number of decisions emitted: every attempt except
// same-customer duplicates produces exactly one.
func (s Summary) Decisions() int {
	return s.Accepted + s.Rejected
}
