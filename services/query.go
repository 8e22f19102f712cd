package services

import (
	"strings"

	"hotel-booking/dto"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultSortColumn = "created_at"

// sortColumns map từ sortBy (chữ thường) sang tên cột
type sortColumns map[string]string

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// applySearch LOWER(col) LIKE %term% trên các cột, nối bằng OR; % và _ trong term là ký tự thường
func applySearch(db *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return db
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	conds := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// applySort sắp xếp theo cột trong whitelist, không khớp thì dùng created_at
func applySort(db *gorm.DB, sortBy, direction string, allowed sortColumns) *gorm.DB {
	col, ok := allowed[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		col = defaultSortColumn
	}
	desc := strings.EqualFold(strings.TrimSpace(direction), "desc")
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

// paginate đếm, sắp xếp, bỏ qua, lấy một trang rồi map sang DTO
func paginate[M any, D any](query *gorm.DB, req dto.PaginationRequest, sorts sortColumns, mapFn func(M) D, preloads ...string) (dto.PagedResponse[D], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return dto.PagedResponse[D]{}, err
	}

	find := applySort(query.Session(&gorm.Session{}), req.SortBy, req.SortDirection, sorts)
	for _, p := range preloads {
		find = find.Preload(p)
	}

	var rows []M
	if err := find.Offset(req.Offset()).Limit(req.PageSize).Find(&rows).Error; err != nil {
		return dto.PagedResponse[D]{}, err
	}

	items := make([]D, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapFn(row))
	}
	return dto.PagedResponse[D]{
		Items:  items,
		Paging: dto.NewPaging(total, req),
	}, nil
}
