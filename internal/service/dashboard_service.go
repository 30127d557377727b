package service

import (
	"fmt"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const recentAttemptsLimit = 5
const testPerformanceLimit = 10

type DashboardService interface {
	StudentDashboard(userID uint, category string) (*dto.StudentDashboardDTO, error)
	AdminDashboard() (*dto.AdminDashboardDTO, error)
}

type dashboardService struct {
	attemptRepo   repository.AttemptRepository
	reattemptRepo repository.ReattemptRepository
	testRepo      repository.TestRepository
	db            *gorm.DB
}

func NewDashboardService(
	attemptRepo repository.AttemptRepository,
	reattemptRepo repository.ReattemptRepository,
	testRepo repository.TestRepository,
	db *gorm.DB,
) DashboardService {
	return &dashboardService{
		attemptRepo:   attemptRepo,
		reattemptRepo: reattemptRepo,
		testRepo:      testRepo,
		db:            db,
	}
}

func (s *dashboardService) StudentDashboard(userID uint, category string) (*dto.StudentDashboardDTO, error) {
	resp := dto.StudentDashboardDTO{}

	tests, err := s.testRepo.FindAllWithQuestionCount(model.TestStatusPublished, category)
	if err != nil {
		return nil, fmt.Errorf("error counting available tests: %w", err)
	}
	resp.AvailableTests = int64(len(tests))

	if resp.AttemptedTests, err = s.attemptRepo.DistinctTestCountByUser(userID); err != nil {
		return nil, fmt.Errorf("error counting attempted tests: %w", err)
	}
	if resp.AverageScore, resp.BestScore, err = s.attemptRepo.UserScoreStats(userID); err != nil {
		return nil, fmt.Errorf("error computing score stats: %w", err)
	}
	if resp.PendingRequests, err = s.reattemptRepo.CountPendingByUser(userID); err != nil {
		return nil, fmt.Errorf("error counting pending requests: %w", err)
	}

	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent attempts: %w", err)
	}
	if len(attempts) > recentAttemptsLimit {
		attempts = attempts[:recentAttemptsLimit]
	}
	resp.RecentAttempts = make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		resp.RecentAttempts = append(resp.RecentAttempts, toAttemptSummaryDTO(&a.Attempt, a.TestTitle))
	}
	return &resp, nil
}

func (s *dashboardService) AdminDashboard() (*dto.AdminDashboardDTO, error) {
	resp := dto.AdminDashboardDTO{CategoryBreakdown: map[string]int64{}}

	if err := s.db.Model(&model.User{}).
		Where("role = ?", model.RoleStudent).
		Count(&resp.TotalStudents).Error; err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	if err := s.db.Model(&model.User{}).
		Where("role = ? AND status = ?", model.RoleStudent, model.StatusPending).
		Count(&resp.PendingApprovals).Error; err != nil {
		return nil, fmt.Errorf("error counting pending approvals: %w", err)
	}
	if err := s.db.Model(&model.Test{}).Count(&resp.TotalTests).Error; err != nil {
		return nil, fmt.Errorf("error counting tests: %w", err)
	}
	if err := s.db.Model(&model.Test{}).
		Where("status = ?", model.TestStatusPublished).
		Count(&resp.PublishedTests).Error; err != nil {
		return nil, fmt.Errorf("error counting published tests: %w", err)
	}

	var err error
	if resp.TotalAttempts, err = s.attemptRepo.Count(); err != nil {
		return nil, fmt.Errorf("error counting attempts: %w", err)
	}
	if resp.PendingReattempts, err = s.reattemptRepo.CountPending(); err != nil {
		return nil, fmt.Errorf("error counting pending re-attempts: %w", err)
	}

	var rows []struct {
		Category string
		Count    int64
	}
	if err := s.db.Model(&model.User{}).
		Select("category, COUNT(*) as count").
		Where("role = ?", model.RoleStudent).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error computing category breakdown: %w", err)
	}
	for _, row := range rows {
		resp.CategoryBreakdown[row.Category] = row.Count
	}

	averages, err := s.attemptRepo.TestAverages(testPerformanceLimit)
	if err != nil {
		log.Warn().Err(err).Msg("AdminDashboard: failed to compute test averages")
	} else {
		resp.TestPerformance = make([]dto.TestPerformance, 0, len(averages))
		for _, a := range averages {
			resp.TestPerformance = append(resp.TestPerformance, dto.TestPerformance{
				TestID:       a.TestID,
				Title:        a.Title,
				AttemptCount: a.AttemptCount,
				AverageScore: a.AverageScore,
			})
		}
	}
	return &resp, nil
}
