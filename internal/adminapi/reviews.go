package adminapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerReviewRoutes() {
	webserver.AdminGET("/reviews", listReviews)
	webserver.AdminPUT("/reviews/:id/approve", approveReview)
	webserver.AdminPUT("/reviews/:id/reject", rejectReview)
	webserver.AdminDELETE("/reviews/:id", deleteReview)
}

func listReviews(c echo.Context) error {
	var reviews []domain.Review
	if err := webserver.GetDB(c).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query reviews"})
	}

	views := make([]echo.Map, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, echo.Map{
			"_id":            strconv.FormatInt(r.ID, 10),
			"product_id":     strconv.FormatInt(r.ProductId, 10),
			"product_name":   r.ProductName,
			"customer_name":  r.CustomerName,
			"customer_email": r.CustomerEmail,
			"rating":         r.Rating,
			"comment":        r.Comment,
			"status":         r.Status,
			"created_at":     r.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": views})
}

func setReviewStatus(c echo.Context, status string) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid review ID"})
	}
	var review domain.Review
	if err := webserver.GetDB(c).Where("id = ?", id).First(&review).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Review not found"})
	}
	if err := webserver.GetDB(c).Model(&review).Update("status", status).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update review"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func approveReview(c echo.Context) error {
	return setReviewStatus(c, domain.ReviewStatusApproved)
}

func rejectReview(c echo.Context) error {
	return setReviewStatus(c, domain.ReviewStatusRejected)
}

func deleteReview(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid review ID"})
	}
	var review domain.Review
	if err := webserver.GetDB(c).Where("id = ?", id).First(&review).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Review not found"})
	}
	if err := webserver.GetDB(c).Delete(&review).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete review"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
