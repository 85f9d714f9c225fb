package store

import (
	"context"
	"encoding/json"
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/andrewpaige1/nodecanvas-api/graph"
	"github.com/andrewpaige1/nodecanvas-api/models"
)

// GormStore implements Gateway over the projects table, with the nodes and
// links arrays held as JSON columns.
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormStore(db *gorm.DB, logger *zap.Logger) *GormStore {
	return &GormStore{db: db, logger: logger}
}

func (s *GormStore) Load(ctx context.Context, owner, projectID string) (*graph.Model, bool) {
	p, ok := s.GetProject(ctx, owner, projectID)
	if !ok {
		return nil, false
	}
	nodes, links, err := decodeGraph(p.Nodes, p.Links)
	if err != nil {
		s.logger.Warn("stored graph payload is unreadable",
			zap.String("project", projectID), zap.Error(err))
		return nil, false
	}
	return graph.NewModel(nodes, links), true
}

// GetProject fetches the full project document, scoped to its owner. Misses
// of any kind resolve to absent.
func (s *GormStore) GetProject(ctx context.Context, owner, projectID string) (*models.Project, bool) {
	if owner == "" || projectID == "" {
		return nil, false
	}
	var p models.Project
	err := s.db.WithContext(ctx).
		Where("public_id = ? AND owner_id = ?", projectID, owner).
		First(&p).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("project lookup failed",
				zap.String("project", projectID), zap.Error(err))
		}
		return nil, false
	}
	return &p, true
}

func (s *GormStore) Save(ctx context.Context, owner, projectID string, nodes []*graph.Node, links []graph.Link) error {
	if owner == "" || projectID == "" {
		return ErrNotFound
	}
	nodesJSON, linksJSON, err := encodeGraph(nodes, links)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("public_id = ? AND owner_id = ?", projectID, owner).
		Updates(map[string]any{"nodes": nodesJSON, "links": linksJSON})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListProjects(ctx context.Context, owner string) []Summary {
	if owner == "" {
		return nil
	}
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		s.logger.Warn("project listing failed", zap.Error(err))
		return nil
	}
	summaries := make([]Summary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, Summary{ID: p.PublicID, Name: p.Name, Status: p.Status})
	}
	return summaries
}

func (s *GormStore) CreateProject(ctx context.Context, owner, name string) (*models.Project, error) {
	if owner == "" {
		return nil, errors.New("owner is required")
	}
	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	p := models.Project{
		PublicID: publicID,
		Name:     name,
		Status:   models.StatusActive,
		OwnerID:  owner,
		Nodes:    datatypes.JSON("[]"),
		Links:    datatypes.JSON("[]"),
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func encodeGraph(nodes []*graph.Node, links []graph.Link) (datatypes.JSON, datatypes.JSON, error) {
	if nodes == nil {
		nodes = []*graph.Node{}
	}
	if links == nil {
		links = []graph.Link{}
	}
	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return nil, nil, err
	}
	linksJSON, err := json.Marshal(links)
	if err != nil {
		return nil, nil, err
	}
	return nodesJSON, linksJSON, nil
}

func decodeGraph(nodesJSON, linksJSON datatypes.JSON) ([]*graph.Node, []graph.Link, error) {
	var nodes []*graph.Node
	if len(nodesJSON) > 0 {
		if err := json.Unmarshal(nodesJSON, &nodes); err != nil {
			return nil, nil, err
		}
	}
	var links []graph.Link
	if len(linksJSON) > 0 {
		if err := json.Unmarshal(linksJSON, &links); err != nil {
			return nil, nil, err
		}
	}
	return nodes, links, nil
}
