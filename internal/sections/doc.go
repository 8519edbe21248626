// Package sections builds the view models of the portfolio page sections:
// the experience timeline, the filterable project grid and the footer.
// Every view is a pure function of the injected content plus explicit UI state.
package sections
