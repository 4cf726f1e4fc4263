package property

const propertyColumns = `
	id, category, title, price, address,
	area, exclusive_area, approval_date, purpose, total_floors, floor,
	direction, direction_standard, transaction_type, parking, maintenance_fee,
	power_supply, hoist, ceiling_height, move_in_date, description,
	image_path, youtube_url, status, created_at`

const (
	SelectProperties = `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT 50 OFFSET ( ($2 - 1) * 50 )
	`
	SelectPropertyByID = `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1
	`
	SelectRecentByCategory = `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE category = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	InsertProperty = `
		INSERT INTO properties (
			category, title, price, address,
			area, exclusive_area, approval_date, purpose, total_floors, floor,
			direction, direction_standard, transaction_type, parking, maintenance_fee,
			power_supply, hoist, ceiling_height, move_in_date, description,
			image_path, youtube_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + propertyColumns + `
	`
	UpdatePropertyByID = `
		UPDATE properties SET
			category = $1, title = $2, price = $3, address = $4,
			area = $5, exclusive_area = $6, approval_date = $7, purpose = $8, total_floors = $9, floor = $10,
			direction = $11, direction_standard = $12, transaction_type = $13, parking = $14, maintenance_fee = $15,
			power_supply = $16, hoist = $17, ceiling_height = $18, move_in_date = $19, description = $20,
			image_path = $21, youtube_url = $22, status = $23
		WHERE id = $24
		RETURNING ` + propertyColumns + `
	`
	DeletePropertyByID = `DELETE FROM properties WHERE id = $1`
	CountProperties    = `SELECT COUNT(*) FROM properties`
	CountByCategory    = `SELECT category, COUNT(*) FROM properties GROUP BY category`
)
