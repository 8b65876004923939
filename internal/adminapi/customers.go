package adminapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerCustomerRoutes() {
	webserver.AdminGET("/customers", listCustomers)
	webserver.AdminGET("/customers/export", exportCustomers)
}

func listCustomers(c echo.Context) error {
	page, pageSize := parsePagination(c)

	var customers []domain.User
	if err := webserver.GetDB(c).
		Where("role = ?", domain.RoleCustomer).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query customers"})
	}

	views := make([]echo.Map, 0, len(customers))
	for _, u := range customers {
		name := u.Name
		if name == "" {
			name = u.Username
		}
		views = append(views, echo.Map{
			"_id":        strconv.FormatInt(u.ID, 10),
			"name":       name,
			"email":      u.Email,
			"phone":      u.Phone,
			"created_at": u.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": views})
}

type customerCSVRow struct {
	ID        string `csv:"id"`
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	Phone     string `csv:"phone"`
	Country   string `csv:"country"`
	CreatedAt string `csv:"created_at"`
}

// exportCustomers streams every customer account as CSV.
func exportCustomers(c echo.Context) error {
	var customers []domain.User
	if err := webserver.GetDB(c).
		Where("role = ?", domain.RoleCustomer).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query customers"})
	}

	rows := make([]customerCSVRow, 0, len(customers))
	for _, u := range customers {
		name := u.Name
		if name == "" {
			name = u.Username
		}
		rows = append(rows, customerCSVRow{
			ID:        strconv.FormatInt(u.ID, 10),
			Name:      name,
			Email:     u.Email,
			Phone:     u.Phone,
			Country:   u.Country,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build export"})
	}

	filename := fmt.Sprintf("customers-%s.csv", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
