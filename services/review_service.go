package services

import (
	"context"

	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/validator"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var reviewSorts = sortColumns{
	"rating":    "rating",
	"createdat": "created_at",
}

type ReviewService struct {
	baseService
}

func NewReviewService(opts ServiceOptions) *ReviewService {
	return &ReviewService{baseService: newBaseService(opts)}
}

// GetReviews lấy danh sách đánh giá theo phòng, tài khoản, điểm
func (s *ReviewService) GetReviews(ctx context.Context, req dto.ReviewPaginationRequest) response.APIResponse[dto.PagedResponse[dto.ReviewDto]] {
	req.Normalize()
	query := s.db.WithContext(ctx).Model(&models.Review{})
	query = applySearch(query, req.Search, "comment")
	if req.RoomID != "" {
		query = query.Where("room_id = ?", req.RoomID)
	}
	if req.AccountID != "" {
		query = query.Where("account_id = ?", req.AccountID)
	}
	if req.Rating != nil {
		query = query.Where("rating = ?", *req.Rating)
	}

	page, err := paginate(query, req.PaginationRequest, reviewSorts, dto.ToReviewDto, "Room")
	if err != nil {
		s.logger.Error("Lỗi lấy danh sách đánh giá: %v", err)
		return response.InternalErrorResult[dto.PagedResponse[dto.ReviewDto]](err)
	}
	return response.OK(page, "Lấy danh sách đánh giá thành công")
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id uuid.UUID) response.APIResponse[dto.ReviewDto] {
	var review models.Review
	if err := s.db.WithContext(ctx).Preload("Room").First(&review, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.ReviewDto]("Không tìm thấy đánh giá")
		}
		return response.InternalErrorResult[dto.ReviewDto](err)
	}
	return response.OK(dto.ToReviewDto(review), "Lấy thông tin đánh giá thành công")
}

func (s *ReviewService) CreateReview(ctx context.Context, req dto.CreateReviewRequest) response.APIResponse[dto.ReviewDto] {
	if appErr := validator.ValidateReview(req.Comment, req.Rating); appErr != nil {
		return response.BadRequestResult[dto.ReviewDto](appErr.Message)
	}
	if req.AccountID == uuid.Nil {
		return response.BadRequestResult[dto.ReviewDto]("Tài khoản không được để trống")
	}

	db := s.db.WithContext(ctx)
	if req.RoomID == uuid.Nil {
		return response.BadRequestResult[dto.ReviewDto]("Phòng không được để trống")
	}
	var room models.Room
	if err := db.First(&room, "id = ?", req.RoomID).Error; err != nil {
		if isNotFound(err) {
			return response.BadRequestResult[dto.ReviewDto]("Phòng không tồn tại")
		}
		return response.InternalErrorResult[dto.ReviewDto](err)
	}

	review := models.Review{
		RoomID:    req.RoomID,
		AccountID: req.AccountID,
		Comment:   req.Comment,
		Rating:    req.Rating,
		CreatedAt: s.now(),
	}
	if err := db.Omit(clause.Associations).Create(&review).Error; err != nil {
		s.logger.Error("Lỗi tạo đánh giá: %v", err)
		return response.InternalErrorResult[dto.ReviewDto](err)
	}
	review.Room = room
	return response.Created(dto.ToReviewDto(review), "Tạo đánh giá thành công")
}

func (s *ReviewService) UpdateReview(ctx context.Context, id uuid.UUID, req dto.UpdateReviewRequest) response.APIResponse[dto.ReviewDto] {
	if appErr := validator.ValidateReview(req.Comment, req.Rating); appErr != nil {
		return response.BadRequestResult[dto.ReviewDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	var review models.Review
	if err := db.Preload("Room").First(&review, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.ReviewDto]("Không tìm thấy đánh giá")
		}
		return response.InternalErrorResult[dto.ReviewDto](err)
	}

	review.Comment = req.Comment
	review.Rating = req.Rating
	if err := db.Omit(clause.Associations).Save(&review).Error; err != nil {
		s.logger.Error("Lỗi cập nhật đánh giá %s: %v", id, err)
		return response.InternalErrorResult[dto.ReviewDto](err)
	}
	return response.OK(dto.ToReviewDto(review), "Cập nhật đánh giá thành công")
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) response.APIResponse[bool] {
	return softDelete[models.Review](s.db.WithContext(ctx), id, "đánh giá")
}
