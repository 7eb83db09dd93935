package dashboard

import (
	"cancerdash/adapters/excel"
	"cancerdash/domain/cancer"
	"cancerdash/internal"
	"cancerdash/internal/config"
	"cancerdash/internal/errors"
)

// Element ids shared by the page, the update channel and the callbacks.
const (
	GraphID          = "my-graph"
	RegionDropdownID = "region-dropdown"
	CancerDropdownID = "cancer-type-dropdown"
)

// State is everything the dashboard derives from the dataset at startup.
// It is built once and only read afterwards.
type State struct {
	Table         *cancer.Table
	RegionOptions []string
	CancerOptions []string
	// DefaultCancer is empty when the configured default is not one of
	// CancerOptions.
	DefaultCancer string
	Colors        map[string]string
	Callbacks     *Registry

	logger *internal.Logger
}

// LoadState reads the configured data file and builds the dashboard state.
// Any error here is a startup failure.
func LoadState(cfg *config.Config, logger *internal.Logger) (*State, error) {
	data, err := excel.NewDataReader(cfg.Data.File).ReadData()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", cfg.Data.File)
	}

	table, err := cancer.NewTable(data.Headers, data.Rows)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dataset %s", cfg.Data.File)
	}

	return NewState(table, cfg.Dashboard, logger)
}

// NewState derives selector options, country colors and the callback
// registry from a loaded table.
func NewState(table *cancer.Table, cfg config.DashboardConfig, logger *internal.Logger) (*State, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	logger = logger.With("Dashboard")

	cancerOptions := table.CancerColumns()
	if len(cfg.CancerColumns) > 0 {
		selected, err := table.SelectColumns(cfg.CancerColumns)
		if err != nil {
			return nil, errors.WithCode(errors.CodeConfigInvalid, err)
		}
		cancerOptions = selected
	}

	s := &State{
		Table:         table,
		RegionOptions: table.RegionOptions(),
		CancerOptions: cancerOptions,
		Colors:        AssignColors(table.Rows()),
		Callbacks:     NewRegistry(),
		logger:        logger,
	}

	if contains(cancerOptions, cfg.DefaultCancer) {
		s.DefaultCancer = cfg.DefaultCancer
	} else {
		logger.Warn("default cancer column %q is not among %d cancer columns; selector starts empty", cfg.DefaultCancer, len(cancerOptions))
	}

	if err := s.Callbacks.Register(GraphCallback(s)); err != nil {
		return nil, errors.Wrap(err, "failed to register graph callback")
	}

	logger.Info("loaded %d rows, %d regions, %d cancer columns", table.Len(), len(s.RegionOptions)-1, len(cancerOptions))
	return s, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
