package categorizer

// CategoryRule pairs a category with the ordered patterns that detect it.
// The rule tables keep the Portuguese/Brazilian merchant vocabulary of the
// statements this server ingests alongside the English equivalents.
type CategoryRule struct {
	Category Category
	Patterns []string
}

// categoryRules is the primary decision list. Categories are tried in
// CategoryOrder and within a category patterns are tried top to bottom; the
// first pattern to match anywhere decides the category. Several patterns rely
// on that ordering to disambiguate: "uber eats" and "gas station" are claimed
// by food and transport before the plain "uber" and "gas" patterns of later
// categories are ever consulted.
var categoryRules = []CategoryRule{
	{Category: CategoryFood, Patterns: []string{
		`supermercado|mercado|mercearia`,
		`padaria|bakery`,
		`restaurante|restaurant|rest\b`,
		`lanchonete|lanchon|lanch`,
		`cafe|coffee`,
		`açougue|meat`,
		`hortifruti|frutas`,
		`delivery|ifood|uber\s*eats|rappi`,
		`ifd\*?|ifd\s`,
		`pizzaria|pizza`,
		`bar\b|pub\b`,
		`confeitaria|confeit`,
		`donalds|burger|king`,
		`sushi|japanese|izakaya`,
		`churrascaria|bbq`,
		`alimenta[çc][aã]o|alimentos|food`,
		`confianca`,
		`real\s*alimentos`,
		`napopi|pizzas`,
		`berton.*martini`,
		`fogaca\s*paes`,
		`nutrisavour`,
	}},
	{Category: CategoryTransport, Patterns: []string{
		`uber|99|cabify|taxi`,
		`combustivel|combustiveis|posto|gas\s*station|gasolina|alcool|diesel`,
		`estacionamento|parking|park\b`,
		`pedagio|toll`,
		`onibus|bus|metro|subway|trem|train`,
		`aluguel\s*carro|rent.*car|localiza|movida|unidas`,
		`mecanica|oficina|auto\s*center|pneu|tire`,
		`multa|detran|dmv`,
		`seguro\s*auto|car\s*insurance`,
		`sorocaba.*combustiveis`,
		`platamo.*posto`,
		`rrm\s*estacionamentos`,
		`pronto\s*park`,
		`jumbo\s*estacionamento`,
		`fabio\s*araujo`,
		`david\s*henrique\s*carr`,
	}},
	{Category: CategoryShopping, Patterns: []string{
		`amazon|mercado\s*livre|mercado\s*pago|shopee|aliexpress`,
		`loja|store|\bshop\b`,
		`roupas|clothes|vestuar[iy]o|fashion`,
		`calcados|sapato|shoe|tenis`,
		`eletro|electronic|tech|computer`,
		`moveis|furniture|decora[çc][aã]o`,
		`livrar[iy]a|books|papelaria`,
		`brinquedo|toys`,
		`cosmeticos|perfum|beauty`,
		`joias|jewelry|relogio|watch`,
		`shopping`,
		`magazine|casas\s*bahia|ponto\s*frio|extra\b|carrefour`,
		`leroy|materiais|material\s*construcao`,
		`riachuelo|renner|c&a|zara|h&m`,
		`armarinhos`,
		`bazar`,
		`casa\s*mendes`,
		`materiais\s*jp`,
		`minuto\s*pa`,
		`melimais`,
		`ebazar`,
		`ranacomerci`,
		`rifanecome`,
	}},
	{Category: CategoryHealth, Patterns: []string{
		`farmacia|pharmacy|drogaria|drogasil|droga\s*raia|pague\s*menos`,
		`medico|doctor|clinica|clinic|hospital`,
		`dentista|dental|odonto`,
		`exame|exam|laboratorio|lab\b`,
		`plano\s*saude|health\s*insurance|unimed|amil|sulamerica`,
		`psico|terapia|therapy|therapist`,
		`nutri|diet`,
		`fisio|physio`,
		`academia|gym|fitness|personal`,
		`yoga|pilates|crossfit`,
	}},
	{Category: CategoryEntertainment, Patterns: []string{
		`cinema|movie|filme`,
		`teatro|theater|show|concert`,
		`spotify|netflix|amazon\s*prime|disney|hbo|paramount|streaming`,
		`game|gaming|playstation|xbox|nintendo|steam`,
		`livro|\bbook\b|kindle`,
		`clube|\bclub\b`,
		`festa|party|evento|event`,
		`viagem|travel|hotel|hostel|airbnb|booking`,
		`turismo|tourism|passeio|tour`,
		`paramount\+?|paramountplus`,
		`sesc`,
		`confraria`,
	}},
	{Category: CategoryUtilities, Patterns: []string{
		`luz|energia|eletric|cpfl|enel|light`,
		`agua|water|sabesp|saneamento`,
		`\bgas\b|comgas`,
		`internet|vivo|claro|tim\b|\boi\b|\bnet\b|telefone|phone|celular|mobile`,
		`aluguel|\brent\b|condominio|iptu`,
		`seguro|insurance`,
		`banco|bank|tarifa|fee`,
		`cartao|card|anuidade`,
		`imposto|tax\b|governo|government`,
		`claude\.ai|claude\s*subscription`,
		`google\s*one`,
		`apple\.com|apple\s*bill`,
		`contabilizei`,
		`mag\s*servicos`,
		`iof\s*compra`,
	}},
	{Category: CategoryEducation, Patterns: []string{
		`escola|school|colegio|faculdade|university|universidade`,
		`curso|course|aula|class|ensino`,
		`livro\s*didatico|textbook|apostila`,
		`material\s*escolar|school\s*supplies`,
		`mensalidade|tuition`,
		`udemy|coursera|alura|edx`,
		`idioma|language|ingles|english`,
	}},
}

// enhancedRules is the broader keyword decision list used only after
// categoryRules declined. It trades precision for coverage: generic commerce
// and billing vocabulary rather than known merchant names.
var enhancedRules = []CategoryRule{
	{Category: CategoryUtilities, Patterns: []string{
		`subscription|assinatura`,
		`taxa|fee|tarifa`,
		`conta|bill`,
		`pagamento|payment`,
		`mensalidade|monthly`,
		`anuidade|annual`,
		`\.ai|\.com|digital`,
		`servicos|services`,
		`tecnologia|technology`,
		`software|app\b`,
		`cloud|storage`,
	}},
	{Category: CategoryShopping, Patterns: []string{
		`loja|store`,
		`comercio|commerce`,
		`varejo|retail`,
		`produtos|products`,
		`vendas|sales`,
		`atacado|wholesale`,
		`importacao|import`,
		`distribuidora|distributor`,
		`representacoes|representatives`,
	}},
	{Category: CategoryTransport, Patterns: []string{
		`transporte|transport`,
		`viagem|travel|trip`,
		`carro|\bcar\b|\bauto\b`,
		`moto|motorcycle`,
		`bike|bicicleta`,
		`logistica|logistics`,
		`entrega|delivery`,
	}},
	{Category: CategoryFood, Patterns: []string{
		`alimento|food`,
		`bebida|drink|beverage`,
		`gourmet|delicatessen`,
		`culinaria|culinary`,
		`gastronomia|gastronomy`,
		`sabor|flavor|taste`,
		`kitchen|cozinha`,
	}},
	{Category: CategoryHealth, Patterns: []string{
		`saude|health|medical`,
		`clinica|clinic`,
		`laboratorio|laboratory`,
		`medicina|medicine`,
		`terapia|therapy`,
		`bem.estar|wellness`,
		`cuidados|care`,
	}},
	{Category: CategoryEntertainment, Patterns: []string{
		`entretenimento|entertainment`,
		`diversao|fun`,
		`lazer|leisure`,
		`cultura|culture`,
		`arte|art\b`,
		`musica|music`,
		`video|filme|movie`,
		`show|concert|evento`,
		`club|clube`,
		`streaming|media`,
	}},
}
