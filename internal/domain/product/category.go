package product

type Category string

const (
	CategoryLaptopPart Category = "laptop_part"
	CategoryAccessory  Category = "accessory"
	CategoryConsumable Category = "consumable"
	CategoryOther      Category = "other"
)

var validCategories = map[Category]bool{
	CategoryLaptopPart: true,
	CategoryAccessory:  true,
	CategoryConsumable: true,
	CategoryOther:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) IsActive() bool {
	return s == StatusActive
}
