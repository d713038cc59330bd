package main

// ==== Agregados ====

// Count é um par (valor da categoria, frequência) já normalizado.
type Count struct {
	Label string
	N     int
}

// Limites de truncagem por vista.
const (
	topGraficos    = 20 // gráficos de barras e tabelas do PDF
	topBotoes      = 6  // quick-buttons da barra lateral
	topMunicipios  = 15 // drill-down por município
	maxLinhasGrid  = 1000
	maxPontosCalor = 5000
)

// Metrics são os quatro contadores do topo da página.
type Metrics struct {
	Total     int
	Situacoes int
	Orgaos    int
	Pecas     int
}

func computeMetrics(ds *dataset, where string, args []any) (Metrics, error) {
	total, err := countRows(ds.db, where, args)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Total:     total,
		Situacoes: uniqueCount(ds.db, ds.roles.Situacao, where, args),
		Orgaos:    uniqueCount(ds.db, ds.roles.Orgao, where, args),
		Pecas:     uniqueCount(ds.db, ds.roles.Peca, where, args),
	}, nil
}

// chartData agrupa o que um gráfico de barras precisa.
type chartData struct {
	Titulo string
	Itens  []Count
}

// computeCharts devolve até três gráficos, um por papel resolvido.
func computeCharts(ds *dataset, where string, args []any) []chartData {
	specs := []struct {
		col    string
		titulo string
	}{
		{ds.roles.Situacao, "Mandados por Situação (Top 20)"},
		{ds.roles.Orgao, "Mandados por Órgão Expedidor (Top 20)"},
		{ds.roles.Peca, "Mandados por Peça / Tipo (Top 20)"},
	}
	var out []chartData
	for _, sp := range specs {
		if sp.col == "" {
			continue
		}
		itens, err := topCounts(ds.db, sp.col, where, args, topGraficos)
		if err != nil || len(itens) == 0 {
			continue
		}
		out = append(out, chartData{Titulo: sp.titulo, Itens: itens})
	}
	return out
}
