// Package navigation resuelve nombres visibles de la consola (productos, equipos,
// comerciales, contratos y clientes) al identificador corto con el que las vistas
// construyen enlaces.
//
// Las búsquedas son totales: un nombre desconocido, incluida la cadena vacía,
// resuelve al ID por defecto de su categoría y nunca produce error.
package navigation

// IDs por defecto de cada categoría. Deben coincidir con la primera entrada de
// su tabla; mustTable lo comprueba al arrancar.
const (
	DefaultProductID     = "1"
	DefaultTeamID        = "1"
	DefaultSalespersonID = "1"
	DefaultContractID    = "1"
	DefaultCustomerID    = "1"
)

var productTable = mustTable(DefaultProductID,
	Entry{Name: "防爆电机", ID: "1"},
	Entry{Name: "防爆风机", ID: "2"},
	Entry{Name: "防爆空调机", ID: "3"},
	Entry{Name: "防爆照明灯具", ID: "4"},
	Entry{Name: "防爆配电箱", ID: "5"},
	Entry{Name: "储能电池柜", ID: "6"},
	Entry{Name: "智能巡检机器人", ID: "7"},
	Entry{Name: "工业除湿机", ID: "8"},
)

var teamTable = mustTable(DefaultTeamID,
	Entry{Name: "华东销售组", ID: "1"},
	Entry{Name: "华南销售组", ID: "2"},
	Entry{Name: "华北销售组", ID: "3"},
	Entry{Name: "西南销售组", ID: "4"},
	Entry{Name: "大客户组", ID: "5"},
	Entry{Name: "海外业务组", ID: "6"},
	Entry{Name: "技术支持组", ID: "7"},
	Entry{Name: "售后服务组", ID: "8"},
	Entry{Name: "储能组", ID: "9"},
)

var salespersonTable = mustTable(DefaultSalespersonID,
	Entry{Name: "张伟", ID: "1"},
	Entry{Name: "李娜", ID: "2"},
	Entry{Name: "王强", ID: "3"},
	Entry{Name: "刘洋", ID: "4"},
	Entry{Name: "陈静", ID: "5"},
	Entry{Name: "杨帆", ID: "6"},
	Entry{Name: "赵磊", ID: "7"},
	Entry{Name: "周敏", ID: "8"},
)

var contractTable = mustTable(DefaultContractID,
	Entry{Name: "HT2023021", ID: "1"},
	Entry{Name: "HT2023022", ID: "2"},
	Entry{Name: "HT2023023", ID: "3"},
	Entry{Name: "HT2023024", ID: "4"},
	Entry{Name: "HT2023025", ID: "5"},
	Entry{Name: "HT2023026", ID: "6"},
	Entry{Name: "HT2023027", ID: "7"},
	Entry{Name: "HT2023028", ID: "8"},
)

var customerTable = mustTable(DefaultCustomerID,
	Entry{Name: "上海石化设备有限公司", ID: "1"},
	Entry{Name: "南京化工集团", ID: "2"},
	Entry{Name: "宁波港务集团", ID: "3"},
	Entry{Name: "苏州精密制造有限公司", ID: "4"},
	Entry{Name: "无锡能源科技有限公司", ID: "5"},
	Entry{Name: "常州电力设备有限公司", ID: "6"},
	Entry{Name: "温州化学工业有限公司", ID: "7"},
	Entry{Name: "合肥新能源有限公司", ID: "8"},
	Entry{Name: "嘉兴纺织集团", ID: "9"},
	Entry{Name: "杭州新材料有限公司", ID: "10"},
)

var tables = map[Category]*Table{
	CategoryProduct:     productTable,
	CategoryTeam:        teamTable,
	CategorySalesperson: salespersonTable,
	CategoryContract:    contractTable,
	CategoryCustomer:    customerTable,
}

// Resolver firma común de los resolvedores por categoría.
type Resolver func(displayName string) string

// ResolveProductID resuelve el nombre de un producto.
func ResolveProductID(name string) string { return productTable.Resolve(name) }

// ResolveTeamID resuelve el nombre de un equipo.
func ResolveTeamID(name string) string { return teamTable.Resolve(name) }

// ResolveSalespersonID resuelve el nombre de un comercial.
func ResolveSalespersonID(name string) string { return salespersonTable.Resolve(name) }

// ResolveContractID resuelve el número de un contrato.
func ResolveContractID(name string) string { return contractTable.Resolve(name) }

// ResolveCustomerID resuelve la razón social de un cliente.
func ResolveCustomerID(name string) string { return customerTable.Resolve(name) }

// ResolverFor devuelve el resolvedor de la categoría, o nil si no existe.
func ResolverFor(c Category) Resolver {
	switch c {
	case CategoryProduct:
		return ResolveProductID
	case CategoryTeam:
		return ResolveTeamID
	case CategorySalesperson:
		return ResolveSalespersonID
	case CategoryContract:
		return ResolveContractID
	case CategoryCustomer:
		return ResolveCustomerID
	}
	return nil
}

// TableFor devuelve la tabla (de solo lectura) de la categoría.
func TableFor(c Category) (*Table, bool) {
	t, ok := tables[c]
	return t, ok
}

// TryResolve resuelve como el resolvedor de la categoría e indica además si el
// nombre era conocido. Para categorías inexistentes devuelve ("", false).
func TryResolve(c Category, name string) (string, bool) {
	t, ok := tables[c]
	if !ok {
		return "", false
	}
	return t.TryResolve(name)
}
